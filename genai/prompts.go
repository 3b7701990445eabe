package genai

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/intelia/rfpaccel/internal/templating"
)

//go:embed prompts/metadata.md
var metadataTemplate string

//go:embed prompts/questions.md
var questionsTemplate string

//go:embed prompts/answers.md
var answersTemplate string

//go:embed prompts/timeline.md
var timelineTemplate string

//go:embed prompts/plan.md
var planTemplate string

// Prompt text limits keep large RFPs within the model context window.
const (
	metadataTextLimit  = 30000
	documentTextLimit  = 50000
	knowledgeTextLimit = 10000
)

func metadataPrompt(documentText string) (string, error) {
	return expand(metadataTemplate, map[string]interface{}{
		"document": clip(documentText, metadataTextLimit),
	})
}

func questionsPrompt(documentText string, minQuestions, maxQuestions int) (string, error) {
	return expand(questionsTemplate, map[string]interface{}{
		"min":      minQuestions,
		"max":      maxQuestions,
		"document": clip(documentText, documentTextLimit),
	})
}

func answersPrompt(questionsJSON, companyJSON, knowledge string) (string, error) {
	return expand(answersTemplate, map[string]interface{}{
		"company":   companyJSON,
		"knowledge": clip(knowledge, knowledgeTextLimit),
		"questions": questionsJSON,
	})
}

func timelinePrompt(documentText string) (string, error) {
	return expand(timelineTemplate, map[string]interface{}{
		"document": clip(documentText, documentTextLimit),
	})
}

func planPrompt(timelineJSON string, defaultPhases []string) (string, error) {
	return expand(planTemplate, map[string]interface{}{
		"timeline": timelineJSON,
		"phases":   "- " + strings.Join(defaultPhases, "\n- "),
	})
}

func expand(template string, variables map[string]interface{}) (string, error) {
	prompt, err := templating.Expand(template, variables)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return prompt, nil
}

// clip truncates text to at most limit bytes without splitting a rune.
func clip(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	clipped := text[:limit]
	for len(clipped) > 0 && !utf8.ValidString(clipped) {
		clipped = clipped[:len(clipped)-1]
	}
	return clipped
}
