package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	reportgen "github.com/goliatone/go-reportgen"
	"github.com/goliatone/go-reportgen/pkg/dataset"
	"github.com/goliatone/go-reportgen/pkg/graphql"
	"github.com/goliatone/go-reportgen/pkg/orchestrator"
	"github.com/goliatone/go-reportgen/pkg/query"
	"github.com/goliatone/go-reportgen/pkg/render"
	"github.com/goliatone/go-reportgen/pkg/renderers/console"
	"github.com/goliatone/go-reportgen/pkg/renderers/jsonreport"
	"github.com/goliatone/go-reportgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-reportgen/pkg/workspace"
)

const defaultQuery = "{ allFactSheets { edges { node { id name completion { completion } } } } }"

func main() {
	source := flag.String("source", "", "query-result document path or URL")
	endpoint := flag.String("endpoint", "", "workspace base URL (mutually exclusive with -source)")
	token := flag.String("token", "", "workspace API token")
	gql := flag.String("query", defaultQuery, "GraphQL query sent to the workspace endpoint")
	view := flag.String("view", "", "view configuration to apply")
	format := flag.String("format", "", "result document format (graphql, dataset; auto-detected when empty)")
	rendererName := flag.String("renderer", "vanilla", "renderer to use (vanilla, console, json)")
	filterExpr := flag.String("filter", "", "row predicate expression, e.g. 'completionValue < 0.1'")
	locale := flag.String("locale", "", "translation locale for labels and titles")
	themeName := flag.String("theme", "", "theme name")
	themeVariant := flag.String("variant", "", "theme variant")
	panelsFlag := flag.String("panels", "", "comma-separated panel names")
	output := flag.String("out", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "explore the report interactively on the terminal")
	flag.Parse()

	ctx := context.Background()

	loader := reportgen.NewLoader(query.WithDefaultSources())

	options := []orchestrator.Option{
		orchestrator.WithLoader(loader),
		orchestrator.WithAdapterRegistry(buildAdapters(loader)),
		orchestrator.WithDefaultFormat(graphql.DefaultAdapterName),
		orchestrator.WithRegistry(buildRegistry()),
		orchestrator.WithDefaultRenderer(*rendererName),
	}
	if *locale != "" {
		options = append(options, orchestrator.WithLocale(*locale))
	}

	req := orchestrator.Request{
		View:         *view,
		Format:       *format,
		Renderer:     *rendererName,
		Filter:       *filterExpr,
		ThemeName:    *themeName,
		ThemeVariant: *themeVariant,
	}
	if *panelsFlag != "" {
		req.RenderOptions.Panels = splitList(*panelsFlag)
	}

	switch {
	case *endpoint != "":
		doc, translator, err := fetchFromWorkspace(ctx, *endpoint, *token, *gql)
		if err != nil {
			log.Fatalf("workspace fetch failed: %v", err)
		}
		req.Document = doc
		if translator != nil {
			options = append(options, orchestrator.WithTranslator(translator))
		}
	case *source != "":
		src := parseSource(*source)
		if src == nil {
			log.Fatalf("invalid source: %q", *source)
		}
		req.Source = src
	default:
		log.Fatal("either -source or -endpoint is required")
	}

	gen := orchestrator.New(options...)

	if *interactive {
		explore(ctx, gen, req)
		return
	}

	out, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func buildAdapters(loader query.Loader) *orchestrator.AdapterRegistry {
	adapters := orchestrator.NewAdapterRegistry()
	adapters.MustRegister(graphql.NewAdapter(loader))
	adapters.MustRegister(dataset.NewAdapter(loader))
	return adapters
}

func buildRegistry() *render.Registry {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		log.Fatalf("configure vanilla renderer: %v", err)
	}
	registry.MustRegister(html)

	text, err := console.New()
	if err != nil {
		log.Fatalf("configure console renderer: %v", err)
	}
	registry.MustRegister(text)

	jsonOut, err := jsonreport.New()
	if err != nil {
		log.Fatalf("configure json renderer: %v", err)
	}
	registry.MustRegister(jsonOut)

	return registry
}

func explore(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request) {
	report, err := gen.BuildModel(ctx, req)
	if err != nil {
		log.Fatalf("failed to build report: %v", err)
	}

	term, err := console.New()
	if err != nil {
		log.Fatalf("configure console renderer: %v", err)
	}
	if err := term.Explore(ctx, report); err != nil {
		if err == console.ErrAborted {
			return
		}
		log.Fatalf("explore failed: %v", err)
	}
}

func fetchFromWorkspace(ctx context.Context, endpoint, token, gql string) (*query.Document, render.Translator, error) {
	client, err := workspace.NewClient(
		workspace.WithBaseURL(endpoint),
		workspace.WithAPIToken(token),
	)
	if err != nil {
		return nil, nil, err
	}

	var translator render.Translator
	if ws, err := client.Init(ctx); err == nil {
		translator = ws.Translator()
	} else {
		log.Printf("init skipped: %v", err)
	}

	doc, err := client.ExecuteGraphQL(ctx, gql, nil)
	if err != nil {
		return nil, nil, err
	}
	return &doc, translator, nil
}

func parseSource(raw string) query.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return query.SourceFromURL(path)
	}
	return query.SourceFromFile(path)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
