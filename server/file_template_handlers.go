package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/jrsteele09/go-contest-portal/theme"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*
var templateFiles embed.FS

const layoutTemplate = "layout.html"

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page together with the shared layout
func ParseTemplate(name string) (*template.Template, error) {
	return template.New(name).ParseFS(TemplateFilesFS(), name, layoutTemplate)
}

type pages struct {
	login        *template.Template
	callback     *template.Template
	selectRole   *template.Template
	dashboard    *template.Template
	notFound     *template.Template
	runtimeError *template.Template
}

func parsePages() (*pages, error) {
	p := &pages{}
	for name, dst := range map[string]**template.Template{
		"login.html":         &p.login,
		"callback.html":      &p.callback,
		"select_role.html":   &p.selectRole,
		"dashboard.html":     &p.dashboard,
		"not_found.html":     &p.notFound,
		"runtime_error.html": &p.runtimeError,
	} {
		tmpl, err := ParseTemplate(name)
		if err != nil {
			return nil, err
		}
		*dst = tmpl
	}
	return p, nil
}

// PageData is embedded by every page model
type PageData struct {
	Title   string
	AppName string
	Theme   theme.Variant
}

func (s *Server) pageData(r *http.Request, title string) PageData {
	return PageData{Title: title, AppName: s.config.GetAppName(), Theme: s.currentTheme(r)}
}

// render executes tmpl into a buffer first so a template error never leaves a half-written page
func (s *Server) render(w http.ResponseWriter, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
