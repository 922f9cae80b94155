package reportgen

import (
	internalLoader "github.com/goliatone/go-reportgen/internal/query/loader"
	internalParser "github.com/goliatone/go-reportgen/internal/graphql/parser"
	"github.com/goliatone/go-reportgen/pkg/query"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...query.LoaderOption) query.Loader {
	cfg := query.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a GraphQL envelope parser backed by the internal
// implementation.
func NewParser(options ...query.ParserOption) query.Parser {
	cfg := query.NewParserOptions(options...)
	return internalParser.New(cfg)
}
