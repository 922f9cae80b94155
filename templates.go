package reportgen

import (
	"io/fs"

	"github.com/goliatone/go-reportgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so
// callers can reuse or extend them without importing the renderer package
// directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedViews exposes the built-in view configuration documents.
func EmbeddedViews() fs.FS {
	return viewconfig.EmbeddedFS()
}
