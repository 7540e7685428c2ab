package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the termgen banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Same indigo-to-rose ramp on every line of the logo.
	lines := []struct {
		text  string
		color string
	}{
		{`  _                                  `, "#818cf8"},
		{` | |_ ___ _ __ _ __ ___   __ _  ___ _ __  `, "#a78bfa"},
		{` | __/ _ \ '__| '_ ' _ \ / _' |/ _ \ '_ \ `, "#c084fc"},
		{` | ||  __/ |  | | | | | | (_| |  __/ | | |`, "#e879f9"},
		{`  \__\___|_|  |_| |_| |_|\__, |\___|_| |_|`, "#f472b6"},
		{`                         |___/  v` + version, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
