// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-scout/internal/search"
	"github.com/pdiddy/patent-scout/pkg/types"
)

// FormatReport writes the report as a human-readable block to w. When
// showPatents is true the prior-art table is included between the idea
// analysis and the comparison.
func FormatReport(r *types.Report, showPatents bool, w io.Writer) {
	fmt.Fprintln(w, "=== IDEA ANALYSIS ===")
	fmt.Fprintln(w, "Idea:")
	fmt.Fprintln(w, indent(r.Idea))
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintln(w, indent(r.IdeaAnalysis.Summary))
	fmt.Fprintf(w, "\nKeywords: %s\n", strings.Join(r.IdeaAnalysis.Keywords, ", "))
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(r.IdeaAnalysis.Categories, ", "))

	if showPatents {
		fmt.Fprintln(w, "\n=== PRIOR ART ===")
		search.FormatTable(r.Patents, w)
	}

	fmt.Fprintln(w, "\n=== PRIOR ART COMPARISON ===")
	fmt.Fprintf(w, "Overall overlap risk: %s\n", r.Comparison.OverallOverlapRisk)

	if len(r.Comparison.PerPatent) > 0 {
		fmt.Fprintln(w, "\nPer-patent assessment:")
		for _, a := range r.Comparison.PerPatent {
			label := a.PatentLabel
			if a.PatentID != "" {
				label = fmt.Sprintf("%s (%s)", label, a.PatentID)
			}
			fmt.Fprintf(w, " - %s similarity=%s: %s\n", label, a.Similarity, a.Notes)
		}
	}

	if len(r.Comparison.RecommendedChanges) > 0 {
		fmt.Fprintln(w, "\nRecommended changes:")
		for _, change := range r.Comparison.RecommendedChanges {
			fmt.Fprintf(w, " - %s\n", change)
		}
	}

	fmt.Fprintln(w, "\nDisclaimer:")
	fmt.Fprintln(w, r.Comparison.Disclaimer)
}

// FormatReportJSON writes the raw report as indented JSON to w.
func FormatReportJSON(r *types.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatReportYAML writes the raw report as YAML to w.
func FormatReportYAML(r *types.Report, w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
