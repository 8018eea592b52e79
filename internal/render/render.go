// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns page models into HTML. Every page template is
// parsed together with the shared base layout; requests made by shell.js
// for in-place page transitions (HX-Request header) receive only the main
// content fragment.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"confsite/internal/content"
	"confsite/internal/middleware"
	"confsite/internal/routes"
	"confsite/internal/shell"
)

//go:embed templates/base.html templates/pages/*.html
var templateFS embed.FS

// PageData holds everything a page template can reach.
type PageData struct {
	Title       string
	Description string
	Canonical   string
	Site        *content.Site
	Chrome      shell.Chrome
	CSRFToken   string
	Flashes     []Flash
	Form        Form
	Page        any // page model from content.Catalog.Page
}

// Flash is a one-time notification rendered above the page content.
type Flash struct {
	Type    string // "success" or "error"
	Message string
}

// Form carries submitted values back into a re-rendered form.
type Form struct {
	Values map[string]string
	Field  string // name of the field the error refers to
}

// Value returns the submitted value of a field, or "".
func (f Form) Value(name string) string {
	return f.Values[name]
}

// Invalid reports whether the error flash refers to the named field.
func (f Form) Invalid(name string) bool {
	return f.Field == name
}

// Renderer holds one parsed template set per page id.
type Renderer struct {
	templates map[routes.PageID]*template.Template
	funcMap   template.FuncMap
}

// New parses the page templates for every id in routes.All, each paired
// with the base layout. A page without a template is an error, so every
// id the chrome can link to is renderable.
func New(devMode bool, table *routes.Table) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[routes.PageID]*template.Template),
		funcMap: template.FuncMap{
			"pagePath": func(id string) string {
				return table.PathFor(routes.PageID(id))
			},
			"activeClass": func(active bool) string {
				if active {
					return "nav-link is-active"
				}
				return "nav-link"
			},
			"isDev": func() bool {
				return devMode
			},
			"year": func() int {
				return time.Now().Year()
			},
			"tel":       telHref,
			"eventIcon": eventIcon,
			"inc": func(i int) int {
				return i + 1
			},
		},
	}

	for _, rt := range routes.All {
		name := "templates/pages/" + string(rt.ID) + ".html"
		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[rt.ID] = tmpl
	}

	return r, nil
}

// Bytes renders a page. partial selects the content fragment used for
// in-place transitions instead of the full document.
func (rn *Renderer) Bytes(id routes.PageID, data *PageData, partial bool) ([]byte, error) {
	tmpl, ok := rn.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %q not found", id)
	}
	name := "base.html"
	if partial {
		name = "partial"
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s for %s: %w", name, id, err)
	}
	return buf.Bytes(), nil
}

// Page renders a page for r and writes it with the given status. The page
// is rendered into a buffer first so that a template error still produces
// a clean 500 instead of a truncated document.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, id routes.PageID, data *PageData) error {
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	body, err := rn.Bytes(id, data, IsPartial(r))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return err
	}
	Write(w, r, status, body)
	return nil
}

// Write sends an already rendered page.
func Write(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Add("Vary", "HX-Request")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(body)
	}
}

// IsPartial reports whether the request asks for the content fragment only.
func IsPartial(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// telHref turns a display phone number into a tel: URL.
// Example: "+91 80 1234 5678" -> "tel:+918012345678"
func telHref(phone string) template.URL {
	var b strings.Builder
	b.WriteString("tel:")
	for i, c := range phone {
		if (c >= '0' && c <= '9') || (c == '+' && i == 0) {
			b.WriteRune(c)
		}
	}
	return template.URL(b.String())
}

// eventIcon picks the marker shown next to a schedule entry.
func eventIcon(kind string) string {
	switch kind {
	case "keynote":
		return "🎤"
	case "workshop":
		return "🛠️"
	case "parallel":
		return "📑"
	case "panel":
		return "💬"
	case "ceremony":
		return "🏛️"
	case "break":
		return "☕"
	default:
		return "📅"
	}
}
