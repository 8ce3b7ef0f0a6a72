package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var files embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsGlob = "templates/partials/*.html"
	pagesGlob    = "templates/pages/*.html"
)

// Renderer - набор страниц для gin: у каждой страницы свой экземпляр
// шаблона (layout + partials + страница), поэтому блоки "content" не конфликтуют.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer разбирает встроенные шаблоны. Имя страницы - имя файла без .html.
func NewRenderer() (*Renderer, error) {
	pageFiles, err := fs.Glob(files, pagesGlob)
	if err != nil {
		return nil, err
	}

	base, err := template.New("layout.html").Funcs(Funcs()).ParseFS(files, layoutFile, partialsGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, file := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(files, file); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return r, nil
}

// Instance реализует render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown page template %q", name))
	}
	return render.HTML{Template: t, Name: "layout.html", Data: data}
}

// Funcs - функции, доступные в шаблонах
func Funcs() template.FuncMap {
	return template.FuncMap{
		"monthYear": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("Jan 2006")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}
