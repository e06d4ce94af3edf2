package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

// RenderMode selects how a response is shaped.
type RenderMode int

const (
	// Full wraps the content in the page shell.
	Full RenderMode = iota
	// Fragment emits the content alone, for in-page refreshes.
	Fragment
)

func (m RenderMode) String() string {
	switch m {
	case Fragment:
		return "fragment"
	default:
		return "full"
	}
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render writes content to w, wrapped in the page shell unless mode is Fragment.
func Render(w io.Writer, mode RenderMode, content Content) error {
	var err error
	switch mode {
	case Fragment:
		err = templates.ExecuteTemplate(w, "content", content)
	default:
		err = templates.ExecuteTemplate(w, "page", NewPage(content))
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", mode, err)
	}
	return nil
}
