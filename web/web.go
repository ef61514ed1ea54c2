// Package web carries the embedded HTML front end.
package web

import "embed"

// Templates holds the HTML templates rendered by the HTTP layer.
//
//go:embed templates/*.html
var Templates embed.FS
