package mockworkspace

import "strings"

// SearchApplications returns the applications whose name contains the needle,
// case-insensitively, in dataset order. An empty needle matches everything;
// nameless entries never match a non-empty needle.
func SearchApplications(apps []Application, needle string) []Application {
	trimmed := strings.ToLower(strings.TrimSpace(needle))
	if trimmed == "" {
		return apps
	}
	matched := make([]Application, 0, len(apps))
	for _, app := range apps {
		if app.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(app.Name), trimmed) {
			matched = append(matched, app)
		}
	}
	return matched
}
