// Package static embeds the storefront's stylesheet and vendored scripts.
package static

import (
	"embed"
	"io/fs"
)

//go:generate curl -fsSL -o js/htmx.min.js https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js

// FS holds the files served under /static/
//
//go:embed styles.css js
var FS embed.FS

// HTMXFile is the vendored htmx build inside FS
const HTMXFile = "js/htmx.min.js"

const htmxCDN = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// ScriptSrc is the URL the page loads htmx from: the copy in fsys when one was
// vendored, the pinned CDN build otherwise.
func ScriptSrc(fsys fs.FS) string {
	if _, err := fs.Stat(fsys, HTMXFile); err == nil {
		return "/static/" + HTMXFile
	}
	return htmxCDN
}
