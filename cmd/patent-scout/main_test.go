// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/patent-scout/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"configuration error", fmt.Errorf("key missing: %w", types.ErrConfiguration), 2},
		{"search API error", fmt.Errorf("HTTP 500: %w", types.ErrSearchAPI), 3},
		{"inference error", fmt.Errorf("connection refused: %w", types.ErrInference), 4},
		{"other error", fmt.Errorf("no idea text provided on stdin"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestReadIdea(t *testing.T) {
	got, err := readIdea(strings.NewReader("  A foldable solar panel backpack\n"))
	if err != nil {
		t.Fatalf("readIdea() error: %v", err)
	}
	if got != "A foldable solar panel backpack" {
		t.Errorf("readIdea() = %q, idea should be trimmed", got)
	}
}

func TestReadIdeaEmpty(t *testing.T) {
	if _, err := readIdea(strings.NewReader("")); err == nil {
		t.Fatal("empty stdin should be an input error")
	}
	if _, err := readIdea(strings.NewReader("   \n\t\n")); err == nil {
		t.Fatal("whitespace-only stdin should be an input error")
	}
}
