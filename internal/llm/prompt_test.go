package llm

import (
	"strings"
	"testing"
)

func TestBuildPromptSelectsGeneralTemplate(t *testing.T) {
	prompt := BuildPrompt("Jane Doe, Senior Widget Engineer", "")

	if !strings.Contains(prompt, "Jane Doe, Senior Widget Engineer") {
		t.Fatalf("prompt does not contain resume text:\n%s", prompt)
	}
	if strings.Contains(prompt, "Job Description:") {
		t.Fatalf("general prompt should not contain a job description section:\n%s", prompt)
	}
	if !strings.Contains(prompt, "ats_score") {
		t.Fatalf("general prompt should describe the ats_score field:\n%s", prompt)
	}
}

func TestBuildPromptSelectsComparisonTemplate(t *testing.T) {
	prompt := BuildPrompt("Jane Doe, Senior Widget Engineer", "Seeking a widget engineer with Go experience")

	if !strings.Contains(prompt, "Jane Doe, Senior Widget Engineer") {
		t.Fatalf("prompt does not contain resume text:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Seeking a widget engineer with Go experience") {
		t.Fatalf("prompt does not contain job description:\n%s", prompt)
	}
	if !strings.Contains(prompt, "match_score") {
		t.Fatalf("comparison prompt should describe the match_score field:\n%s", prompt)
	}
}

func TestBuildPromptTreatsWhitespaceJobDescriptionAsAbsent(t *testing.T) {
	prompt := BuildPrompt("resume body", "   \n\t  ")

	if strings.Contains(prompt, "match_score") {
		t.Fatalf("whitespace-only job description must select the general template:\n%s", prompt)
	}
	if !strings.Contains(prompt, "ats_score") {
		t.Fatalf("expected general template:\n%s", prompt)
	}
}

func TestBuildPromptDemandsFencedJSON(t *testing.T) {
	for _, jd := range []string{"", "a real job description"} {
		prompt := BuildPrompt("resume body", jd)
		if !strings.Contains(prompt, "```json") {
			t.Fatalf("prompt must instruct the model to use a json fence (jd=%q):\n%s", jd, prompt)
		}
	}
}
