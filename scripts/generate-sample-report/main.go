package main

import (
	"context"
	"fmt"
	"os"

	reportgen "github.com/goliatone/go-reportgen"
	"github.com/goliatone/go-reportgen/pkg/query"
)

func main() {
	ctx := context.Background()

	const (
		resultPath = "examples/fixtures/completion.json"
		viewName   = "default"
		outputPath = "examples/multi-renderer/out/sample-report.html"
	)

	source := query.SourceFromFile(resultPath)
	html, err := reportgen.GenerateHTML(ctx, source, viewName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate report: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated sample report HTML (%d bytes) → %s\n", len(html), outputPath)
}
