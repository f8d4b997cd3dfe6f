package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/page.html.tmpl templates/style.css
var assets embed.FS

var pageTemplate = template.Must(template.New("page.html.tmpl").Funcs(template.FuncMap{
	"css": func(s Style) template.CSS { return template.CSS(s.CSS()) },
	"src": imageURL,
}).ParseFS(assets, "templates/page.html.tmpl"))

var stylesheet = func() template.CSS {
	b, err := assets.ReadFile("templates/style.css")
	if err != nil {
		panic(err)
	}
	return template.CSS(b)
}()

// imageURL trusts only the sources photoSource lets through.
func imageURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return template.URL(s)
	}
	return template.URL(placeholderPhoto)
}

type pageData struct {
	Title string
	CSS   template.CSS
	Tree  *Tree
}

// HTML serializes a tree into a standalone page with the stylesheet inlined.
// The page root carries the id "resume-root".
func HTML(t *Tree) (string, error) {
	var buf bytes.Buffer
	data := pageData{Title: "Resume", CSS: stylesheet, Tree: t}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
