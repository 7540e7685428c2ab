package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCompletionLine(t *testing.T) {
	got := CompletionLine(Summary{Count: 10000, Destination: "termos.txt"})
	if got != "10000 terms saved to termos.txt" {
		t.Errorf("CompletionLine() = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(Summary{
		RunID:       "run-1",
		Count:       4,
		Tokens:      10,
		MaxDepth:    2,
		Destination: "out.txt",
		Duration:    1500 * time.Microsecond,
		Seed:        42,
	})

	for _, want := range []string{
		"## 4 terms saved to out.txt",
		"| Run | `run-1` |",
		"| Mean tokens per term | 2.50 |",
		"| Deepest term | 2 |",
		"| Seed | 42 |",
		"| Elapsed | 1.5ms |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, md)
		}
	}

	if strings.Contains(Markdown(Summary{}), "Mean tokens") {
		t.Error("mean must be omitted for an empty batch")
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	if !strings.Contains(buf.String(), "v1.2.3") {
		t.Errorf("banner lacks version: %q", buf.String())
	}
}
