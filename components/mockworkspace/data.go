package mockworkspace

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/applications.json
var embeddedData embed.FS

// Application is one entry of the embedded dataset. A nil Completion models a
// fact sheet whose completion record is missing, which downstream builders
// skip with a warning.
type Application struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Completion *float64 `json:"completion"`
}

var (
	defaultAppsOnce sync.Once
	defaultApps     []Application
	defaultAppsErr  error
)

// DefaultApplications returns the embedded application dataset. The slice is
// copied so callers can mutate it freely.
func DefaultApplications() ([]Application, error) {
	defaultAppsOnce.Do(func() {
		data, err := embeddedData.ReadFile("data/applications.json")
		if err != nil {
			defaultAppsErr = fmt.Errorf("mockworkspace: read dataset: %w", err)
			return
		}
		if err := json.Unmarshal(data, &defaultApps); err != nil {
			defaultAppsErr = fmt.Errorf("mockworkspace: decode dataset: %w", err)
		}
	})
	if defaultAppsErr != nil {
		return nil, defaultAppsErr
	}
	return append([]Application{}, defaultApps...), nil
}

// DefaultTranslations returns the bundled label translations keyed by locale.
func DefaultTranslations() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"Application.name":       "Name",
			"Application.completion": "Completion",
			"report.title":           "Application Completion",
			"report.panel.summary":   "Summary",
			"report.panel.columns":   "Columns",
			"report.panel.average":   "Average",
		},
		"de": {
			"Application.name":       "Name",
			"Application.completion": "Fertigstellung",
			"report.title":           "Anwendungsfertigstellung",
			"report.panel.summary":   "Zusammenfassung",
			"report.panel.columns":   "Spalten",
			"report.panel.average":   "Durchschnitt",
		},
	}
}
