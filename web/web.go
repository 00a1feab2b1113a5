package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates devuelve las plantillas HTML de la página
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}
