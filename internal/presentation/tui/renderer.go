package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Summary is what the CLI shows once a batch is written.
type Summary struct {
	RunID       string
	Count       int
	Tokens      int
	MaxDepth    int
	Destination string
	Duration    time.Duration
	Seed        uint64
}

// CompletionLine is the one-line completion message.
func CompletionLine(s Summary) string {
	return fmt.Sprintf("%d terms saved to %s", s.Count, s.Destination)
}

// Markdown renders s as a small markdown report.
func Markdown(s Summary) string {
	var sb strings.Builder
	sb.WriteString("## " + CompletionLine(s) + "\n\n")
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Run | `%s` |\n", s.RunID)
	fmt.Fprintf(&sb, "| Terms | %d |\n", s.Count)
	fmt.Fprintf(&sb, "| Tokens | %d |\n", s.Tokens)
	if s.Count > 0 {
		fmt.Fprintf(&sb, "| Mean tokens per term | %.2f |\n", float64(s.Tokens)/float64(s.Count))
	}
	fmt.Fprintf(&sb, "| Deepest term | %d |\n", s.MaxDepth)
	if s.Seed != 0 {
		fmt.Fprintf(&sb, "| Seed | %d |\n", s.Seed)
	}
	fmt.Fprintf(&sb, "| Elapsed | %s |\n", s.Duration.Round(time.Microsecond))
	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// It picks a dark or light style from the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
