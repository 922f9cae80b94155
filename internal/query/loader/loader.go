package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgquery "github.com/goliatone/go-reportgen/pkg/query"
)

// Loader implements pkgquery.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgquery.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgquery.LoaderOptions) pkgquery.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgquery.Source) (pkgquery.Document, error) {
	if src == nil {
		return pkgquery.Document{}, errors.New("query loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgquery.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgquery.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgquery.SourceKindURL:
		if !l.allowHTTP {
			return pkgquery.Document{}, errors.New("query loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("query loader: unsupported source kind")
	}
	if err != nil {
		return pkgquery.Document{}, err
	}

	return pkgquery.NewDocument(src, data)
}
