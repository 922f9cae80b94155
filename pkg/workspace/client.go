package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-reportgen/pkg/query"
)

const defaultUserAgent = "go-reportgen"

// Client talks to the reporting platform: the init endpoint that seeds
// workspace metadata and translations, and the GraphQL endpoint that answers
// entity queries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiToken   string
	userAgent  string
	status     StatusReporter
}

// Option configures the client before construction.
type Option func(*Client)

// WithBaseURL sets the platform base URL, e.g. "https://acme.example.com".
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// WithHTTPClient overrides the HTTP client used for platform calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAPIToken sets the bearer token attached to every request.
func WithAPIToken(token string) Option {
	return func(c *Client) {
		c.apiToken = strings.TrimSpace(token)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(agent); trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// WithStatusReporter wires a busy indicator for long-running calls.
func WithStatusReporter(status StatusReporter) Option {
	return func(c *Client) {
		if status != nil {
			c.status = status
		}
	}
}

// NewClient constructs a platform client. A valid base URL is required.
func NewClient(options ...Option) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
		status:     NopStatus{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(client)
	}

	if client.baseURL == "" {
		return nil, errors.New("workspace: base URL is required")
	}
	parsed, err := url.Parse(client.baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("workspace: invalid base URL %q", client.baseURL)
	}

	return client, nil
}

// Workspace is the platform's answer to the init call.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Translations maps locale to message key to label, e.g.
	// Translations["en"]["Application.name"] = "Name".
	Translations map[string]map[string]string `json:"translations"`
}

type initResponse struct {
	Workspace struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"workspace"`
	Translations map[string]map[string]string `json:"translations"`
}

// Init fetches workspace metadata and field-label translations. The result
// seeds a render.Translator via Workspace.Translator.
func (c *Client) Init(ctx context.Context) (*Workspace, error) {
	release := c.status.Busy("init")
	defer release()

	body, err := c.get(ctx, "/api/init")
	if err != nil {
		return nil, fmt.Errorf("workspace: init: %w", err)
	}

	var decoded initResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("workspace: decode init response: %w", err)
	}

	return &Workspace{
		ID:           decoded.Workspace.ID,
		Name:         decoded.Workspace.Name,
		Translations: decoded.Translations,
	}, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// ExecuteGraphQL posts a query to the GraphQL endpoint and returns the raw
// response as a query document for the parser. GraphQL-level errors stay in
// the payload; the parser surfaces them so partial data is not lost here.
func (c *Client) ExecuteGraphQL(ctx context.Context, gql string, variables map[string]any) (query.Document, error) {
	release := c.status.Busy("graphql")
	defer release()

	if strings.TrimSpace(gql) == "" {
		return query.Document{}, errors.New("workspace: graphql query is required")
	}

	payload, err := json.Marshal(graphqlRequest{Query: gql, Variables: variables})
	if err != nil {
		return query.Document{}, fmt.Errorf("workspace: encode graphql request: %w", err)
	}

	endpoint := c.baseURL + "/graphql"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return query.Document{}, fmt.Errorf("workspace: build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return query.Document{}, fmt.Errorf("workspace: graphql: %w", err)
	}

	doc, err := query.NewDocument(query.SourceFromURL(endpoint), body)
	if err != nil {
		return query.Document{}, fmt.Errorf("workspace: graphql document: %w", err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setCommonHeaders(req)
	return c.do(req)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, bodySnippet(body))
	}
	return body, nil
}

func bodySnippet(body []byte) string {
	const max = 200
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > max {
		snippet = snippet[:max] + "..."
	}
	if snippet == "" {
		return "<empty body>"
	}
	return snippet
}
