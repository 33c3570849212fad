package assistant

import (
	"context"
	"fmt"

	"familylaw_toolkit/pkg/core/utils"
)

const narrativeSystemPrompt = `You are a paralegal assistant at a New York matrimonial law firm.
You will receive a completed financial analysis report. Summarize it in plain
language for the client: what the support obligations are, what discrepancies
were found across their spouse's financial documents, and what the attorney
recommends investigating next.

Rules:
- Never invent or recompute numbers. Quote figures exactly as they appear in the report.
- Do not give legal advice; describe what the analysis shows.
- Keep it under 400 words, in Markdown.`

// Narrator turns a rendered analysis report into client-facing narrative.
type Narrator struct {
	provider Provider
}

// NewNarrator creates a narrator over the given provider.
func NewNarrator(provider Provider) *Narrator {
	return &Narrator{provider: provider}
}

// SummarizeReport produces a plain-language Markdown summary of a report.
func (n *Narrator) SummarizeReport(ctx context.Context, reportText string) (string, error) {
	if reportText == "" {
		return "", fmt.Errorf("empty report text")
	}

	prompt := fmt.Sprintf("Summarize the following analysis report for the client:\n\n%s", reportText)

	raw, err := n.provider.GenerateResponse(ctx, prompt, narrativeSystemPrompt)
	if err != nil {
		return "", fmt.Errorf("narrative generation: %w", err)
	}

	summary := utils.CleanMarkdown(raw)
	if !utils.ValidateMarkdown(summary) {
		return "", fmt.Errorf("narrative generation returned unrenderable markdown")
	}
	return summary, nil
}
