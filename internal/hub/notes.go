package hub

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// notesRenderer turns slide notes (Markdown) into HTML. Raw HTML inside the
// notes is dropped.
type notesRenderer struct {
	md goldmark.Markdown
}

func newNotesRenderer() *notesRenderer {
	return &notesRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
		),
	}
}

// Render converts notes to HTML. If conversion fails the notes are shown as
// escaped plain text.
func (n *notesRenderer) Render(notes string) template.HTML {
	if strings.TrimSpace(notes) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := n.md.Convert([]byte(notes), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(notes) + "</p>")
	}
	return template.HTML(buf.String())
}
