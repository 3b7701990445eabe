package workflow

import (
	"regexp"
	"strings"
)

var listNumbering = regexp.MustCompile(`^\d+[.)]\s*`)

// questionStarters mark imperative lines that request a response even
// though they carry no question mark.
var questionStarters = []string{"describe", "explain", "provide", "list", "detail", "outline"}

// fallbackQuestions cover the standard RFP response sections when the
// text yields no explicit questions.
var fallbackQuestions = []string{
	"Describe your company's experience with similar projects.",
	"Provide details about your proposed methodology and approach.",
	"List the key team members and their qualifications.",
	"Explain your project timeline and milestones.",
	"Describe your quality assurance processes.",
}

const extractedQuestionLimit = 20

// ExtractQuestions pulls the questions an RFP asks of the vendor out of
// its text: lines ending with a question mark, then imperative lines
// opening with a request verb. List numbering is stripped and duplicates
// are dropped; when nothing matches, the canned baseline list is
// returned so answer drafting always has material.
func ExtractQuestions(text string) []string {
	var questions []string
	seen := map[string]bool{}
	add := func(line string) {
		line = listNumbering.ReplaceAllString(line, "")
		if seen[line] {
			return
		}
		seen[line] = true
		questions = append(questions, line)
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "?") && len(line) > 20 {
			add(line)
		}
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 30 || len(line) >= 300 {
			continue
		}
		lower := strings.ToLower(line)
		for _, starter := range questionStarters {
			if strings.HasPrefix(lower, starter) {
				add(line)
				break
			}
		}
	}
	if len(questions) > extractedQuestionLimit {
		questions = questions[:extractedQuestionLimit]
	}
	if len(questions) == 0 {
		return append([]string{}, fallbackQuestions...)
	}
	return questions
}
