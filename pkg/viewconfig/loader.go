package viewconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML view documents.
// When fsys is nil or no view files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{views: make(map[string]View)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isViewFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("viewconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for viewName, raw := range doc.Views {
			name := strings.TrimSpace(viewName)
			if name == "" {
				return fmt.Errorf("viewconfig: file %s defines an empty view name", path)
			}
			if _, exists := store.views[name]; exists {
				return fmt.Errorf("viewconfig: duplicate view %q (file %s)", name, path)
			}

			view, err := normaliseView(raw, name, path)
			if err != nil {
				return err
			}
			store.views[name] = view
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// View returns the configuration for the supplied view name.
func (s *Store) View(name string) (View, bool) {
	if s == nil {
		return View{}, false
	}
	view, ok := s.views[name]
	return view, ok
}

// Names returns the registered view names, sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Views returns all views, sorted by name.
func (s *Store) Views() []View {
	if s == nil {
		return nil
	}
	out := make([]View, 0, len(s.views))
	for _, name := range s.Names() {
		out = append(out, s.views[name])
	}
	return out
}

// Empty reports whether the store holds any views.
func (s *Store) Empty() bool {
	return s == nil || len(s.views) == 0
}

type documentFile struct {
	Views map[string]View `json:"views" yaml:"views"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("viewconfig: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("viewconfig: parse %s: invalid JSON or YAML", source)
}

func normaliseView(raw View, name, source string) (View, error) {
	view := raw
	view.Name = name
	view.Source = source
	view.Columns = append([]ColumnConfig(nil), raw.Columns...)
	view.Panels = append([]string(nil), raw.Panels...)
	view.Icon = sanitizeIconMarkup(raw.Icon)

	seen := make(map[string]struct{}, len(view.Columns))
	for i, column := range view.Columns {
		key := strings.TrimSpace(column.Key)
		if key == "" {
			return View{}, fmt.Errorf("viewconfig: view %q (file %s) column %d has an empty key", name, source, i)
		}
		if _, exists := seen[key]; exists {
			return View{}, fmt.Errorf("viewconfig: view %q (file %s) defines duplicate column %q", name, source, key)
		}
		seen[key] = struct{}{}
		view.Columns[i].Key = key
	}

	if len(raw.Metadata) > 0 {
		view.Metadata = make(map[string]string, len(raw.Metadata))
		for key, value := range raw.Metadata {
			view.Metadata[key] = value
		}
	}

	return view, nil
}

func isViewFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
