// Package web provides the embedded static assets (CSS, JS) for the public
// site. They are served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the production stylesheet
// and the small script that handles the menu, theme switch, and Escape key.
//
//go:embed all:static
var StaticFS embed.FS
