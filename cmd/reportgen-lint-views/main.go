package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-reportgen/pkg/panels"
	"github.com/goliatone/go-reportgen/pkg/validation"
	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [directories...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint view configuration documents: column keys, filter expressions, panel names.\n")
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{"pkg/viewconfig/views"}
	}

	registry := panels.NewRegistry()
	failed := false

	for _, dir := range dirs {
		store, err := viewconfig.LoadFS(os.DirFS(dir))
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", dir, err)
			os.Exit(1)
		}
		if store.Empty() {
			fmt.Fprintf(os.Stderr, "lint %s: no view documents found\n", dir)
			failed = true
			continue
		}

		results := validation.ValidateStore(store, registry)
		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			result := results[name]
			for _, issue := range result.Issues {
				location := name
				if issue.Path != "" {
					location += " > " + issue.Path
				}
				fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", dir, location, issue.Message)
			}
			if !result.Valid {
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
