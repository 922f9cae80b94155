package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	reportgen "github.com/goliatone/go-reportgen"
	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/orchestrator"
	"github.com/goliatone/go-reportgen/pkg/query"
	"github.com/goliatone/go-reportgen/pkg/render"
)

const snapshotRendererName = "report-model-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, report model.ReportModel, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		resultPath = flag.String("result", "examples/fixtures/completion.json", "query-result document path")
		viewName   = flag.String("view", "default", "view configuration to apply")
		presetPath = flag.String("preset", "", "optional JSON transform preset file")
		outputPath = flag.String("output", "pkg/renderers/vanilla/testdata/report_model.json", "output path for the serialized report model")
	)
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	options := []orchestrator.Option{
		orchestrator.WithLoader(reportgen.NewLoader(query.WithDefaultSources())),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	}

	if *presetPath != "" {
		data, err := os.ReadFile(*presetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read transform preset: %v\n", err)
			os.Exit(1)
		}
		transformer, err := orchestrator.NewJSONPresetTransformer(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load transform preset: %v\n", err)
			os.Exit(1)
		}
		options = append(options, orchestrator.WithModelTransformer(transformer))
	}

	orch := orchestrator.New(options...)

	_, err := orch.Generate(ctx, orchestrator.Request{
		Source:   query.SourceFromFile(*resultPath),
		View:     *viewName,
		Renderer: snapshotRendererName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot report model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote report model snapshot to %s\n", *outputPath)
}
