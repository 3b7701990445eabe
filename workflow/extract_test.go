package workflow

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuestions(t *testing.T) {
	testCases := []struct {
		description string
		text        string
		expected    []string
	}{
		{
			description: "question mark lines with numbering stripped",
			text: `Overview of the engagement.
1. What is the expected number of concurrent users at peak load?
2) How should the vendor handle data residency requirements?
Short one?`,
			expected: []string{
				"What is the expected number of concurrent users at peak load?",
				"How should the vendor handle data residency requirements?",
			},
		},
		{
			description: "imperative request lines",
			text: `Background material follows.
Describe your approach to zero-downtime migrations in detail.
Provide details about your security certifications and audit history.
describe it`,
			expected: []string{
				"Describe your approach to zero-downtime migrations in detail.",
				"Provide details about your security certifications and audit history.",
			},
		},
		{
			description: "duplicates dropped",
			text: `What is your proposed staffing model for this project?
What is your proposed staffing model for this project?`,
			expected: []string{
				"What is your proposed staffing model for this project?",
			},
		},
		{
			description: "question lines come before imperative lines",
			text: `Outline your assumptions about the current hosting environment.
What warranty terms apply to delivered software components?`,
			expected: []string{
				"What warranty terms apply to delivered software components?",
				"Outline your assumptions about the current hosting environment.",
			},
		},
		{
			description: "no matches falls back to the baseline list",
			text:        "A short statement of work with nothing to extract.",
			expected:    fallbackQuestions,
		},
	}

	for _, testCase := range testCases {
		actual := ExtractQuestions(testCase.text)
		assert.EqualValues(t, testCase.expected, actual, testCase.description)
	}
}

func TestExtractQuestions_cap(t *testing.T) {
	builder := &strings.Builder{}
	for i := 0; i < 30; i++ {
		builder.WriteString(fmt.Sprintf("What is requirement number %v for the platform rollout?\n", i))
	}
	actual := ExtractQuestions(builder.String())
	assert.Len(t, actual, extractedQuestionLimit)
}
