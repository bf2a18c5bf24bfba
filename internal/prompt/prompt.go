// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt renders the fixed instruction templates sent to the model.
// Rendering is pure and deterministic: the same idea and evidence always
// produce the same text, and missing patent fields render as empty strings.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/patent-scout/pkg/types"
)

// systemText is the fixed preamble prepended to every prompt. It fixes the
// assistant's role, the JSON-only output rule, and the legal-safety language.
const systemText = `You are an AI assistant used in an automated patent-analysis pipeline.

GENERAL ROLE:
- Help users evaluate how novel an invention idea may be
  by comparing it with existing patents.
- You are NOT a lawyer and do NOT give legal advice.
- You assist with understanding, comparison, and refinement of ideas only.

CAPABILITIES:
1) IDEA_ANALYSIS
   - Read a free-form invention description.
   - Produce a concise summary in your own words.
   - Extract technical keywords and phrases.
   - Infer 3-5 relevant technology categories / domains.

2) PRIOR_ART_COMPARISON
   - Given an invention summary and a set of prior patents,
     compare them and identify similarities and differences.
   - Highlight overlapping features that may affect novelty.
   - Suggest differentiating angles and refinements.

3) NOVELTY_REFINEMENT
   - Take the user's original intent and the overlap analysis.
   - Suggest concrete changes to the idea to make it more distinct
     while preserving the main purpose.

OUTPUT RULES:
- When instructed to output JSON, output VALID JSON ONLY:
  no extra commentary, no trailing commas, double quotes around
  keys and string values.
- If information is missing or unclear, say so instead of inventing
  specific patent details.
- Always include a clear disclaimer that this does NOT constitute
  legal advice.

SAFETY / LEGAL:
- Never claim a patent is definitely valid or enforceable.
- Never guarantee novelty, grant success, or freedom to operate.
- Use cautious language like "may", "appears to", "could".`

// ideaTmpl asks the model for a structured reading of the invention idea.
var ideaTmpl = template.Must(template.New("idea").Parse(systemText + `

Analyze the invention: provide a short summary, 5-7 keywords, and 3 categories.

Return ONLY JSON:
{
  "summary": "short summary",
  "keywords": ["kw1", "kw2"],
  "categories": ["cat1", "cat2"]
}

Invention: {{.Idea}}
`))

// compareTmpl asks the model to compare the idea against the retrieved
// patents and suggest differentiating changes.
var compareTmpl = template.Must(template.New("compare").Parse(systemText + `

Compare the invention to the patents below. For each patent rate the
similarity (low, medium, high) with brief notes, then give an overall
overlap risk and concrete changes that would make the idea more distinct.

Return ONLY JSON:
{
  "per_patent_analysis": [
    {"patent_label": "PATENT_1", "patent_id": "", "similarity": "medium", "notes": "brief"}
  ],
  "overall_overlap_risk": "medium",
  "recommended_changes": ["change1"],
  "disclaimer": "Not legal advice."
}

Invention: {{.Summary}}

Patents:
{{.Patents}}
`))

// RenderIdeaPrompt renders the idea-analysis prompt for the given idea text.
func RenderIdeaPrompt(idea string) (string, error) {
	return render(ideaTmpl, struct{ Idea string }{Idea: idea})
}

// RenderComparePrompt renders the prior-art comparison prompt from the idea
// summary and the evidence set. An empty evidence set still yields a valid
// prompt with an empty Patents section.
func RenderComparePrompt(summary string, patents []types.Patent) (string, error) {
	return render(compareTmpl, struct {
		Summary string
		Patents string
	}{
		Summary: summary,
		Patents: FormatPatents(patents),
	})
}

// FormatPatents turns the evidence set into a labeled text block for the
// model: PATENT_1, PATENT_2, ... each with identifier, date, title, and
// abstract. Empty fields stay empty.
func FormatPatents(patents []types.Patent) string {
	chunks := make([]string, 0, len(patents))
	for i, p := range patents {
		chunk := fmt.Sprintf("PATENT_%d (patent_id=%s, date=%s)\nTITLE: %s\nABSTRACT: %s",
			i+1, p.ID, p.Date, strings.TrimSpace(p.Title), strings.TrimSpace(p.Abstract))
		chunks = append(chunks, chunk)
	}
	return strings.Join(chunks, "\n\n")
}

// Label returns the positional evidence label for index i (zero-based).
func Label(i int) string {
	return fmt.Sprintf("PATENT_%d", i+1)
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
