package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Pages holds every HTML page served by the admin panel.
var Pages = template.Must(template.New("").ParseFS(files, "*.html"))
