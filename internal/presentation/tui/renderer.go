package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/aretw0/quickstart/pkg/runner"
)

// NewRenderer returns a markdown renderer for section banners.
// It falls back to plain text when glamour cannot be initialised.
func NewRenderer() runner.ContentRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil
	}
	return r.Render
}
