package hub

import (
	_ "embed"
	"html/template"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))
