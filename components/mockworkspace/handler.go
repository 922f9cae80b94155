package mockworkspace

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// GraphQLHandler builds the query endpoint with default options plus any
// overrides.
func GraphQLHandler(fns ...OptionFn) http.Handler {
	return GraphQLHandlerWithOptions(NewOptions(fns...))
}

// GraphQLHandlerWithOptions builds the query endpoint from a pre-constructed
// Options value. Callers are expected to pass an Options value produced by
// NewOptions so defaults apply.
func GraphQLHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !authorized(w, r, opts) {
			return
		}
		if opts.Latency > 0 {
			select {
			case <-time.After(opts.Latency):
			case <-r.Context().Done():
				return
			}
		}

		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, map[string]any{
				"errors": []graphqlError{{Message: "malformed request body"}},
			})
			return
		}

		if opts.FailureMessage != "" {
			writeJSON(w, map[string]any{
				"errors": []graphqlError{{Message: opts.FailureMessage}},
			})
			return
		}

		apps := opts.Applications
		if apps == nil {
			loaded, err := DefaultApplications()
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			apps = loaded
		}

		if raw, ok := req.Variables["name"]; ok {
			if needle, ok := raw.(string); ok {
				apps = SearchApplications(apps, needle)
			}
		}

		first := len(apps)
		if raw, ok := req.Variables["first"]; ok {
			if value, ok := raw.(float64); ok && int(value) >= 0 && int(value) < first {
				first = int(value)
			}
		}

		edges := make([]map[string]any, 0, first)
		for _, app := range apps[:first] {
			node := map[string]any{
				"id":   app.ID,
				"name": app.Name,
			}
			if app.Completion != nil {
				node["completion"] = map[string]any{"completion": *app.Completion}
			}
			edges = append(edges, map[string]any{"node": node})
		}

		writeJSON(w, map[string]any{
			"data": map[string]any{
				"allFactSheets": map[string]any{
					"totalCount": len(apps),
					"edges":      edges,
				},
			},
		})
	})
}

// InitHandler builds the init endpoint answering workspace metadata and
// translations.
func InitHandler(fns ...OptionFn) http.Handler {
	return InitHandlerWithOptions(NewOptions(fns...))
}

func InitHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !authorized(w, r, opts) {
			return
		}

		translations := opts.Translations
		if translations == nil {
			translations = DefaultTranslations()
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(map[string]any{
			"workspace": map[string]string{
				"id":   opts.WorkspaceID,
				"name": opts.WorkspaceName,
			},
			"translations": translations,
		})
	})
}

func authorized(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if opts.Token != "" && r.Header.Get("Authorization") != "Bearer "+opts.Token {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return false
	}
	if opts.Guard != nil {
		if err := opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
