package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FormatPercent renders a fraction in [0,1] as a percentage string with one
// decimal place, e.g. 0.333333 -> "33.3%".
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// ParsePercent converts a percentage string back into a fraction. It accepts
// the output of FormatPercent and tolerates surrounding whitespace.
func ParsePercent(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errors.New("model: percentage string is empty")
	}
	if trimmed == NotAvailable {
		return 0, errors.New("model: percentage is not available")
	}
	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("model: parse percentage %q: %w", value, err)
	}
	return f / 100, nil
}
