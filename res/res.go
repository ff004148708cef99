package res

import "embed"

// Templates holds the HTML document templates.
//
//go:embed templates
var Templates embed.FS

// Scripts holds the JavaScript helpers for loading remote images.
//
//go:embed scripts
var Scripts embed.FS
