package reportgen

import (
	"io/fs"

	"github.com/goliatone/go-reportgen/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet bundle shipped with the vanilla
// renderer so Go applications can serve it without an asset pipeline.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(reportgen.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
