package assistant

import (
	"context"
	"strings"
	"testing"
)

type fakeProvider struct {
	response string
	err      error
	prompt   string
	system   string
}

func (f *fakeProvider) GenerateResponse(_ context.Context, prompt, systemPrompt string) (string, error) {
	f.prompt = prompt
	f.system = systemPrompt
	return f.response, f.err
}

func TestSummarizeReportCleansMarkdown(t *testing.T) {
	provider := &fakeProvider{response: "```markdown\n## Summary\nSupport is $61,250.00 annually.\n```"}
	narrator := NewNarrator(provider)

	summary, err := narrator.SummarizeReport(context.Background(), "REPORT BODY")
	if err != nil {
		t.Fatalf("SummarizeReport failed: %v", err)
	}
	if strings.Contains(summary, "```") {
		t.Errorf("Expected code fences stripped, got %q", summary)
	}
	if !strings.Contains(summary, "$61,250.00") {
		t.Errorf("Expected figures preserved, got %q", summary)
	}
	if !strings.Contains(provider.prompt, "REPORT BODY") {
		t.Error("Expected report text embedded in prompt")
	}
	if !strings.Contains(provider.system, "paralegal") {
		t.Error("Expected system prompt to carry the assistant role")
	}
}

func TestSummarizeReportEmptyInput(t *testing.T) {
	narrator := NewNarrator(&fakeProvider{})
	if _, err := narrator.SummarizeReport(context.Background(), ""); err == nil {
		t.Error("Expected error for empty report text")
	}
}
