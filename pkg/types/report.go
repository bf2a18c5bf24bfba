// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IdeaAnalysis is the model's structured reading of the invention idea.
// The JSON field names form the output contract the idea-analysis prompt
// instructs the model to follow.
type IdeaAnalysis struct {
	// Summary is a concise restatement of the idea in the model's words.
	Summary string `json:"summary" yaml:"summary"`

	// Keywords are technical terms extracted from the idea; they drive
	// the prior-art query.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Categories are inferred technology domains.
	Categories []string `json:"categories" yaml:"categories"`
}

// PatentAssessment is the model's judgment of one prior patent against
// the idea.
type PatentAssessment struct {
	// PatentLabel is the positional label used in the prompt ("PATENT_1", ...).
	PatentLabel string `json:"patent_label" yaml:"patent_label"`

	// PatentID is the patent identifier; filled from PatentLabel when the
	// model omits it.
	PatentID string `json:"patent_id" yaml:"patent_id"`

	// Similarity is the model's coarse rating (low, medium, high).
	Similarity string `json:"similarity" yaml:"similarity"`

	// Notes are brief free-text observations on overlap.
	Notes string `json:"notes" yaml:"notes"`
}

// Comparison is the model's prior-art comparison for one run.
type Comparison struct {
	PerPatent          []PatentAssessment `json:"per_patent_analysis" yaml:"per_patent_analysis"`
	OverallOverlapRisk string             `json:"overall_overlap_risk" yaml:"overall_overlap_risk"`
	RecommendedChanges []string           `json:"recommended_changes" yaml:"recommended_changes"`
	Disclaimer         string             `json:"disclaimer" yaml:"disclaimer"`
}

// Report is the terminal artifact of one pipeline run: the original idea,
// the model's analysis of it, the retrieved evidence, and the comparison.
type Report struct {
	Idea         string       `json:"idea" yaml:"idea"`
	IdeaAnalysis IdeaAnalysis `json:"idea_analysis" yaml:"idea_analysis"`
	Patents      []Patent     `json:"patents" yaml:"patents"`
	Comparison   Comparison   `json:"comparison" yaml:"comparison"`
}
