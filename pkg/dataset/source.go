package dataset

import "github.com/goliatone/go-reportgen/pkg/query"

// Source aliases the canonical query source abstraction so adapters share
// loader logic.
type Source = query.Source

// SourceKind enumerates the loader modalities.
type SourceKind = query.SourceKind

const (
	SourceKindFile = query.SourceKindFile
	SourceKindFS   = query.SourceKindFS
	SourceKindURL  = query.SourceKindURL
)

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return query.SourceFromFile(path)
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return query.SourceFromFS(name)
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	return query.SourceFromURL(raw)
}
