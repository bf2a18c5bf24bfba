// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the idea → prior art → analysis flow. One run is a
// strict sequence of stateless calls; every failure is fatal and
// short-circuits the remaining stages.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/patent-scout/internal/prompt"
	"github.com/pdiddy/patent-scout/internal/search"
	"github.com/pdiddy/patent-scout/pkg/types"
)

// Searcher retrieves prior-art candidates for a query.
type Searcher interface {
	Search(ctx context.Context, q search.Query) ([]types.Patent, error)
}

// Completer sends one prompt to the model and returns the completion.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// noPriorArtDisclaimer is the fixed disclaimer for runs where the search
// returns no patents and the comparison stage is skipped.
const noPriorArtDisclaimer = "No relevant prior patents were retrieved for this query. " +
	"This does NOT guarantee novelty or patentability. Consult a qualified patent attorney."

// Run executes one pipeline pass: ask the model for a structured reading of
// the idea, search for prior art with the extracted keywords, then ask the
// model to compare the idea against the evidence. Progress lines go to w.
//
// An empty search result skips the comparison call and returns a report
// with the fixed no-prior-art disclaimer.
func Run(ctx context.Context, idea string, searcher Searcher, completer Completer, w io.Writer) (*types.Report, error) {
	fmt.Fprintln(w, "analyzing idea...")
	analysis, err := analyzeIdea(ctx, completer, idea)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "searching prior art...")
	patents, err := searcher.Search(ctx, search.Query{
		Text:     analysis.Summary,
		Keywords: analysis.Keywords,
	})
	if err != nil {
		return nil, fmt.Errorf("prior-art search: %w", err)
	}

	report := &types.Report{
		Idea:         idea,
		IdeaAnalysis: analysis,
		Patents:      patents,
	}

	if len(patents) == 0 {
		fmt.Fprintln(w, "no prior art found, skipping comparison")
		report.Comparison = types.Comparison{
			PerPatent:          []types.PatentAssessment{},
			OverallOverlapRisk: "low",
			RecommendedChanges: []string{},
			Disclaimer:         noPriorArtDisclaimer,
		}
		return report, nil
	}

	fmt.Fprintf(w, "comparing against %d patent(s)...\n", len(patents))
	comparison, err := compare(ctx, completer, analysis.Summary, patents)
	if err != nil {
		return nil, err
	}

	report.Comparison = comparison
	return report, nil
}

// analyzeIdea renders the idea prompt, calls the model, and parses the
// structured analysis.
func analyzeIdea(ctx context.Context, completer Completer, idea string) (types.IdeaAnalysis, error) {
	p, err := prompt.RenderIdeaPrompt(idea)
	if err != nil {
		return types.IdeaAnalysis{}, err
	}

	raw, err := completer.Complete(ctx, p)
	if err != nil {
		return types.IdeaAnalysis{}, fmt.Errorf("idea analysis: %w", err)
	}

	var analysis types.IdeaAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return types.IdeaAnalysis{}, fmt.Errorf("parsing idea analysis JSON (%q): %v: %w",
			clip(raw, 120), err, types.ErrInference)
	}
	return analysis, nil
}

// compare renders the comparison prompt, calls the model, parses the
// comparison, and fills in patent IDs the model omitted.
func compare(ctx context.Context, completer Completer, summary string, patents []types.Patent) (types.Comparison, error) {
	p, err := prompt.RenderComparePrompt(summary, patents)
	if err != nil {
		return types.Comparison{}, err
	}

	raw, err := completer.Complete(ctx, p)
	if err != nil {
		return types.Comparison{}, fmt.Errorf("prior-art comparison: %w", err)
	}

	var comparison types.Comparison
	if err := json.Unmarshal([]byte(raw), &comparison); err != nil {
		return types.Comparison{}, fmt.Errorf("parsing comparison JSON (%q): %v: %w",
			clip(raw, 120), err, types.ErrInference)
	}

	fillPatentIDs(&comparison, patents)
	return comparison, nil
}

// fillPatentIDs maps PATENT_n labels back to patent identifiers for
// assessments where the model left the ID empty.
func fillPatentIDs(comparison *types.Comparison, patents []types.Patent) {
	labelToID := make(map[string]string, len(patents))
	for i, p := range patents {
		labelToID[prompt.Label(i)] = p.ID
	}
	for i := range comparison.PerPatent {
		a := &comparison.PerPatent[i]
		if a.PatentID == "" && a.PatentLabel != "" {
			a.PatentID = labelToID[a.PatentLabel]
		}
	}
}

// clip shortens s to at most max runes for inclusion in error messages,
// never splitting a multibyte character.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
