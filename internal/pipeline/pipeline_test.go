// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/patent-scout/internal/search"
	"github.com/pdiddy/patent-scout/pkg/types"
)

// --- mocks ---

// mockSearcher returns canned patents or a forced error and counts calls.
type mockSearcher struct {
	patents []types.Patent
	err     error
	calls   int
	lastQ   search.Query
}

func (m *mockSearcher) Search(_ context.Context, q search.Query) ([]types.Patent, error) {
	m.calls++
	m.lastQ = q
	if m.err != nil {
		return nil, m.err
	}
	return m.patents, nil
}

// mockCompleter returns queued completions in order and counts calls.
type mockCompleter struct {
	completions []string
	err         error
	calls       int
	prompts     []string
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if len(m.completions) == 0 {
		return "", fmt.Errorf("mock exhausted after %d calls", m.calls)
	}
	next := m.completions[0]
	m.completions = m.completions[1:]
	return next, nil
}

const ideaAnalysisJSON = `{
  "summary": "A backpack with a foldable solar panel for charging devices",
  "keywords": ["solar", "backpack", "foldable", "photovoltaic"],
  "categories": ["wearables", "renewable energy", "consumer electronics"]
}`

const comparisonJSON = `{
  "per_patent_analysis": [
    {"patent_label": "PATENT_1", "similarity": "medium", "notes": "This idea overlaps with US123..."}
  ],
  "overall_overlap_risk": "medium",
  "recommended_changes": ["Integrate the panel into the strap geometry"],
  "disclaimer": "Not legal advice."
}`

var solarPatent = types.Patent{
	ID:       "US123",
	Title:    "Solar Backpack",
	Abstract: "A backpack with integrated photovoltaic panels.",
	Date:     "2020-03-15",
}

func TestRunEndToEnd(t *testing.T) {
	searcher := &mockSearcher{patents: []types.Patent{solarPatent}}
	completer := &mockCompleter{completions: []string{ideaAnalysisJSON, comparisonJSON}}

	var progress bytes.Buffer
	report, err := Run(context.Background(), "A foldable solar panel backpack", searcher, completer, &progress)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if completer.calls != 2 {
		t.Errorf("completer called %d times, want 2", completer.calls)
	}
	if searcher.calls != 1 {
		t.Errorf("searcher called %d times, want 1", searcher.calls)
	}

	// The search query carries the extracted keywords.
	if got := searcher.lastQ.Phrase(); got != "solar backpack foldable photovoltaic" {
		t.Errorf("search phrase = %q", got)
	}

	// The comparison prompt carries the evidence.
	if !strings.Contains(completer.prompts[1], "PATENT_1 (patent_id=US123") {
		t.Error("comparison prompt missing the labeled patent")
	}

	if report.Comparison.OverallOverlapRisk != "medium" {
		t.Errorf("overlap risk = %q, want medium", report.Comparison.OverallOverlapRisk)
	}
	// The empty patent_id is filled from the PATENT_1 label.
	if got := report.Comparison.PerPatent[0].PatentID; got != "US123" {
		t.Errorf("assessment patent_id = %q, want US123", got)
	}

	var out bytes.Buffer
	FormatReport(report, false, &out)
	for _, want := range []string{
		"A foldable solar panel backpack",
		"This idea overlaps with US123...",
		"Overall overlap risk: medium",
		"Not legal advice.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("formatted report missing %q", want)
		}
	}
}

func TestRunSearchFailureSkipsComparison(t *testing.T) {
	searcher := &mockSearcher{err: fmt.Errorf("PatentsView returned HTTP 500: %w", types.ErrSearchAPI)}
	completer := &mockCompleter{completions: []string{ideaAnalysisJSON, comparisonJSON}}

	_, err := Run(context.Background(), "an idea", searcher, completer, &bytes.Buffer{})
	if !errors.Is(err, types.ErrSearchAPI) {
		t.Fatalf("error %v should wrap ErrSearchAPI", err)
	}
	// Only the idea-analysis completion ran; the comparison never did.
	if completer.calls != 1 {
		t.Errorf("completer called %d times after search failure, want 1", completer.calls)
	}
}

func TestRunIdeaAnalysisFailureSkipsSearch(t *testing.T) {
	searcher := &mockSearcher{patents: []types.Patent{solarPatent}}
	completer := &mockCompleter{err: fmt.Errorf("connection refused: %w", types.ErrInference)}

	_, err := Run(context.Background(), "an idea", searcher, completer, &bytes.Buffer{})
	if !errors.Is(err, types.ErrInference) {
		t.Fatalf("error %v should wrap ErrInference", err)
	}
	if searcher.calls != 0 {
		t.Errorf("searcher called %d times after analysis failure, want 0", searcher.calls)
	}
}

func TestRunEmptyResultsSkipsComparison(t *testing.T) {
	searcher := &mockSearcher{patents: nil}
	completer := &mockCompleter{completions: []string{ideaAnalysisJSON}}

	report, err := Run(context.Background(), "a truly novel gadget", searcher, completer, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if completer.calls != 1 {
		t.Errorf("completer called %d times for empty evidence, want 1", completer.calls)
	}
	if report.Comparison.OverallOverlapRisk != "low" {
		t.Errorf("overlap risk = %q, want low", report.Comparison.OverallOverlapRisk)
	}
	if !strings.Contains(report.Comparison.Disclaimer, "does NOT guarantee novelty") {
		t.Errorf("missing no-prior-art disclaimer, got %q", report.Comparison.Disclaimer)
	}

	var out bytes.Buffer
	FormatReport(report, false, &out)
	if !strings.Contains(out.String(), "Overall overlap risk: low") {
		t.Error("formatted report missing the low-risk line")
	}
}

func TestRunBadAnalysisJSON(t *testing.T) {
	searcher := &mockSearcher{}
	completer := &mockCompleter{completions: []string{"I'd be happy to help! Here is my analysis..."}}

	_, err := Run(context.Background(), "an idea", searcher, completer, &bytes.Buffer{})
	if !errors.Is(err, types.ErrInference) {
		t.Fatalf("error %v should wrap ErrInference", err)
	}
	if searcher.calls != 0 {
		t.Errorf("searcher called %d times after parse failure, want 0", searcher.calls)
	}
}

func TestRunBadComparisonJSON(t *testing.T) {
	searcher := &mockSearcher{patents: []types.Patent{solarPatent}}
	completer := &mockCompleter{completions: []string{ideaAnalysisJSON, "not json"}}

	_, err := Run(context.Background(), "an idea", searcher, completer, &bytes.Buffer{})
	if !errors.Is(err, types.ErrInference) {
		t.Fatalf("error %v should wrap ErrInference", err)
	}
}

func TestClipMultibyte(t *testing.T) {
	long := strings.Repeat("é", 150)
	got := clip(long, 120)
	if !utf8.ValidString(got) {
		t.Errorf("clip produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("é", 120)+"..." {
		t.Errorf("clip did not cut on a rune boundary: %q", got)
	}
	if short := clip("short", 120); short != "short" {
		t.Errorf("clip(%q) = %q, want unchanged", "short", short)
	}
}

func TestFormatReportShowPatents(t *testing.T) {
	report := &types.Report{
		Idea:         "A foldable solar panel backpack",
		IdeaAnalysis: types.IdeaAnalysis{Summary: "summary"},
		Patents:      []types.Patent{solarPatent},
		Comparison:   types.Comparison{OverallOverlapRisk: "medium", Disclaimer: "Not legal advice."},
	}

	var out bytes.Buffer
	FormatReport(report, true, &out)
	if !strings.Contains(out.String(), "=== PRIOR ART ===") {
		t.Error("missing prior-art section")
	}
	if !strings.Contains(out.String(), "Solar Backpack") {
		t.Error("missing patent title in table")
	}

	out.Reset()
	FormatReport(report, false, &out)
	if strings.Contains(out.String(), "=== PRIOR ART ===") {
		t.Error("prior-art section printed without --show-patents")
	}
}

func TestFormatReportJSONRoundTrip(t *testing.T) {
	report := &types.Report{
		Idea:    "idea",
		Patents: []types.Patent{solarPatent},
		Comparison: types.Comparison{
			PerPatent: []types.PatentAssessment{{PatentLabel: "PATENT_1", PatentID: "US123"}},
		},
	}

	var out bytes.Buffer
	if err := FormatReportJSON(report, &out); err != nil {
		t.Fatalf("FormatReportJSON() error: %v", err)
	}
	if !strings.Contains(out.String(), `"patent_id": "US123"`) {
		t.Errorf("JSON output missing patent_id field:\n%s", out.String())
	}

	out.Reset()
	if err := FormatReportYAML(report, &out); err != nil {
		t.Fatalf("FormatReportYAML() error: %v", err)
	}
	if !strings.Contains(out.String(), "patent_id: US123") {
		t.Errorf("YAML output missing patent_id field:\n%s", out.String())
	}
}
