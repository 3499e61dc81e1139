// Package reporttemplate loads and executes the document templates with
// pongo2. The two logical templates, doc.md.j2 and layout.html.j2, are parsed
// once at startup; a missing template is a configuration error, not a request
// error.
package reporttemplate
