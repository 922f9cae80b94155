package mockworkspace

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPaths returns the full mount paths (GraphQL, init) under basePath.
func MountPaths(basePath string, fns ...OptionFn) (string, string) {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.GraphQLPath), mountPath(basePath, opts.InitPath)
}

// RegisterRoutes registers both endpoints under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers both endpoints under basePath using a
// pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("mockworkspace: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	graphqlPattern := mountPath(basePath, opts.GraphQLPath)
	initPattern := mountPath(basePath, opts.InitPath)

	mux.Handle(graphqlPattern, GraphQLHandlerWithOptions(opts))
	mux.Handle(initPattern, InitHandlerWithOptions(opts))
	return []string{graphqlPattern, initPattern}, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
