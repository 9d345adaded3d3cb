package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`   ____        _      _        _             _   `, "#818cf8"},
	{`  / __ \__ __ (_)____| | _____| |_ __ _ _ __| |_ `, "#a78bfa"},
	{` | |  | | | | | / __| |/ / __| __/ _' | '__| __|`, "#c084fc"},
	{` | |__| | |_| | | (__|   <\__ \ || (_| | |  | |_ `, "#e879f9"},
	{`  \___\_\\__,_|_|\___|_|\_\___/\__\__,_|_|   \__|`, "#f472b6"},
}

// PrintBanner writes the quickstart banner to w, coloured when w is a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
