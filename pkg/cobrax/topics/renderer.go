package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for display. ext is the topic file's
// extension, e.g. ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as written
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, ext string) string { return content }

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	// Style is a glamour style name or path; empty or "auto" detects it
	Style string
	// WordWrap is the wrap width; 0 keeps glamour's default
	WordWrap int
}

func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render falls back to the raw content for non-markdown topics and for
// anything glamour fails on
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.WordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(r.WordWrap))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
