// Package view renders the server side pages.
package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/errors"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageOverview = "overview"
	PageTour     = "tour"
	PageLogin    = "login"
	PageAccount  = "account"
	PageError    = "error"
)

var pages = []string{PageOverview, PageTour, PageLogin, PageAccount, PageError}

var funcs = template.FuncMap{
	"firstName": func(name string) string {
		if fields := strings.Fields(name); len(fields) > 0 {
			return fields[0]
		}

		return name
	},
}

// Data is the map handed to a page template.
type Data map[string]any

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse page template %s", name)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes the page name. The signed in user is added as "user" unless data sets one.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.Errorf("unknown page %s", name)
	}

	pageData := Data{}
	switch d := data.(type) {
	case Data:
		for k, v := range d {
			pageData[k] = v
		}
	case map[string]any:
		for k, v := range d {
			pageData[k] = v
		}
	case nil:
	default:
		return errors.Errorf("page %s: unsupported data %T", name, data)
	}
	if _, set := pageData["user"]; !set && c != nil {
		if user, ok := deliverycontext.GetCurrentUser(c); ok {
			pageData["user"] = user
		}
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "base", pageData))
}
