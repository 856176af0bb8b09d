package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/general.txt
	generalPrompt string
	//go:embed prompts/comparison.txt
	comparisonPrompt string
)

// BuildPrompt fills the analysis prompt template with the extracted resume
// text. The comparison template is used only when the trimmed job
// description is non-empty; otherwise the general template applies.
func BuildPrompt(resumeText, jobDescription string) string {
	jd := strings.TrimSpace(jobDescription)
	if jd == "" {
		return strings.ReplaceAll(generalPrompt, "{{RESUME_TEXT}}", resumeText)
	}

	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jd,
	)
	return replacer.Replace(comparisonPrompt)
}
