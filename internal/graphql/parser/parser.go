package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	pkgquery "github.com/goliatone/go-reportgen/pkg/query"
)

// Parser implements pkgquery.Parser for the GraphQL response envelope the
// workspace platform speaks: {"data": {...}} with edge collections nested
// under the data object, or {"errors": [...]} on failure.
type Parser struct {
	options pkgquery.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgquery.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgquery.ParserOptions) pkgquery.Parser {
	return &Parser{options: options}
}

type envelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []envelopeError            `json:"errors"`
}

type envelopeError struct {
	Message string `json:"message"`
}

type collection struct {
	TotalCount *int              `json:"totalCount"`
	Edges      []json.RawMessage `json:"edges"`
}

// Parse converts a Document into the Result IR. Transport-level failures
// reported through the envelope's errors array abort parsing; individual
// malformed edges do not, they surface as zero-value nodes the report builder
// skips and counts.
func (p *Parser) Parse(ctx context.Context, doc pkgquery.Document) (pkgquery.Result, error) {
	if err := ctx.Err(); err != nil {
		return pkgquery.Result{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgquery.Result{}, errors.New("graphql parser: document payload is empty")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return pkgquery.Result{}, fmt.Errorf("graphql parser: decode envelope: %w", err)
	}

	if len(env.Errors) > 0 {
		return pkgquery.Result{}, fmt.Errorf("graphql parser: query failed: %s", joinErrorMessages(env.Errors))
	}
	if len(env.Data) == 0 {
		return pkgquery.Result{}, errors.New("graphql parser: response carries no data")
	}

	name, payload, err := p.locateCollection(env.Data)
	if err != nil {
		return pkgquery.Result{}, err
	}

	var coll collection
	if err := json.Unmarshal(payload, &coll); err != nil {
		return pkgquery.Result{}, fmt.Errorf("graphql parser: decode collection %q: %w", name, err)
	}

	result := pkgquery.Result{
		Collection: name,
		Edges:      make([]pkgquery.Edge, 0, len(coll.Edges)),
	}
	if coll.TotalCount != nil {
		result.TotalCount = *coll.TotalCount
	}

	for _, rawEdge := range coll.Edges {
		result.Edges = append(result.Edges, p.decodeEdge(rawEdge))
	}

	return result, nil
}

// locateCollection finds the edge container inside the data object, honoring
// an explicit result path when configured and otherwise scanning keys in
// sorted order for determinism.
func (p *Parser) locateCollection(data map[string]json.RawMessage) (string, json.RawMessage, error) {
	path := strings.TrimSpace(p.options.ResultPath)
	if path != "" {
		return walkResultPath(data, path)
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if holdsEdges(data[key]) {
			return key, data[key], nil
		}
	}
	return "", nil, errors.New("graphql parser: no edge collection found under data")
}

func walkResultPath(data map[string]json.RawMessage, path string) (string, json.RawMessage, error) {
	segments := strings.Split(path, ".")
	current := data
	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return "", nil, fmt.Errorf("graphql parser: result path %q has an empty segment", path)
		}
		raw, ok := current[segment]
		if !ok {
			return "", nil, fmt.Errorf("graphql parser: result path %q: key %q not found", path, segment)
		}
		if i == len(segments)-1 {
			return segment, raw, nil
		}
		next := make(map[string]json.RawMessage)
		if err := json.Unmarshal(raw, &next); err != nil {
			return "", nil, fmt.Errorf("graphql parser: result path %q: %q is not an object", path, segment)
		}
		current = next
	}
	return "", nil, fmt.Errorf("graphql parser: result path %q is empty", path)
}

func holdsEdges(raw json.RawMessage) bool {
	var probe struct {
		Edges []json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Edges != nil
}

func joinErrorMessages(errs []envelopeError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			msg = "unknown error"
		}
		messages = append(messages, msg)
	}
	return strings.Join(messages, "; ")
}
