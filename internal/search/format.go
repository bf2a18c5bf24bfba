// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-scout/pkg/types"
)

// FormatTable writes patents as a human-readable table to w.
func FormatTable(patents []types.Patent, w io.Writer) {
	if len(patents) == 0 {
		fmt.Fprintln(w, "No prior art found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-12s  %-60s  %s\n", "Rank", "Patent", "Title", "Date")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, p := range patents {
		fmt.Fprintf(w, "%-4d  %-12s  %-60s  %s\n", i+1, p.ID, truncate(p.Title, 60), p.Date)
	}

	fmt.Fprintf(w, "\n%d result(s)\n", len(patents))
}

// truncate shortens s to at most max runes, never splitting a multibyte
// character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// FormatJSON writes patents as indented JSON to w.
func FormatJSON(patents []types.Patent, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(patents)
}

// FormatYAML writes patents as YAML to w.
func FormatYAML(patents []types.Patent, w io.Writer) error {
	data, err := yaml.Marshal(patents)
	if err != nil {
		return fmt.Errorf("marshaling patents: %w", err)
	}
	_, err = w.Write(data)
	return err
}
