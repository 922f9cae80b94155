package model

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"name":            "Name",
		"completion":      "Completion",
		"completionRatio": "Completion Ratio",
		"display_name":    "Display Name",
		"lifecycle-phase": "Lifecycle Phase",
		"ipV4Address":     "Ip V 4 Address",
	}

	for key, want := range cases {
		if got := DefaultLabeler(key); got != want {
			t.Errorf("label for %q: want %q, got %q", key, want, got)
		}
	}
}
