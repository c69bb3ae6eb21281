package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ROA\n", "ROA"},
		{"  VCD  \r\n", "VCD"},
		{"roa", "roa"},
		{"", ""},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := prompt(strings.NewReader(tt.in), &out)
		if err != nil {
			t.Fatalf("prompt(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("prompt(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if out.String() != methodPrompt {
			t.Errorf("prompt wrote %q, want %q", out.String(), methodPrompt)
		}
	}
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Modes != "Sorted.txt" || cfg.Energies != "Combined_Free_Energy.txt" {
		t.Fatalf("unexpected default inputs: %q, %q", cfg.Modes, cfg.Energies)
	}
}
