package templates

import "embed"

// Template bodies live under common/ (emitted for every variant) and
// java/ / kotlin/ (one entry-point source each).
//
//go:embed common/*.tmpl java/*.tmpl kotlin/*.tmpl
var templateFS embed.FS
