// Package web embebe las plantillas HTML de la consola en el binario.
package web

import "embed"

// Templates plantillas de páginas y layouts.
//
//go:embed templates
var Templates embed.FS
