package viewconfig

import (
	"embed"
	"io/fs"
)

//go:embed views/*
var embeddedViews embed.FS

// EmbeddedFS returns the bundled view configuration. Callers may pass this
// filesystem to LoadFS to use the default views.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedViews, "views")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}
