// Package htmlview paints the search page from the render view models using
// pongo2 templates embedded in the binary.
package htmlview

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/flosch/pongo2/v6"

	"github.com/aanand-mishra/customer-search/internal/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "page.html"

// TemplatesFS returns the embedded template bundle rooted at its directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page is everything the page template needs.
type Page struct {
	Title     string
	Subtitle  string
	Form      render.Form
	Table     render.Table
	Count     int
	Summary   string
	Error     string
	BusyLabel string
}

// Summary is the results card subtitle, e.g. "Found 1 customer".
func Summary(n int) string {
	if n == 1 {
		return "Found 1 customer"
	}
	return fmt.Sprintf("Found %d customers", n)
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	emptyIcon string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithEmptyIcon replaces the empty-state SVG. Markup outside the SVG
// allow-list is stripped; if nothing survives the default icon is kept.
func WithEmptyIcon(markup string) Option {
	return func(cfg *config) {
		if clean := SanitizeIcon(markup); clean != "" {
			cfg.emptyIcon = clean
		}
	}
}

// Renderer holds the parsed page template. It is safe for concurrent use.
type Renderer struct {
	page      *pongo2.Template
	emptyIcon string
}

// New parses the page template and its includes.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templates: TemplatesFS(),
		emptyIcon: SanitizeIcon(defaultEmptyIcon),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("customer-search", pongo2.NewFSLoader(cfg.templates))
	page, err := set.FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("htmlview: parse %s: %w", pageTemplate, err)
	}

	return &Renderer{page: page, emptyIcon: cfg.emptyIcon}, nil
}

// ContentType is the Content-Type header of rendered pages.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, p Page) error {
	ctx := pongo2.Context{
		"page":          p,
		"empty_icon":    r.emptyIcon,
		"empty_title":   render.EmptyTitle,
		"empty_message": render.EmptyMessage,
	}
	if err := r.page.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("htmlview: execute %s: %w", pageTemplate, err)
	}
	return nil
}
