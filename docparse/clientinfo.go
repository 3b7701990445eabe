package docparse

import (
	"regexp"
	"strings"
	"unicode"
)

// ClientInfo holds fields guessed from document text, used to prefill
// inputs; every field may be empty.
type ClientInfo struct {
	ClientName string `json:"clientName,omitempty"`
	RFPTitle   string `json:"rfpTitle,omitempty"`
	RFPNumber  string `json:"rfpNumber,omitempty"`
	Deadline   string `json:"deadline,omitempty"`
}

var (
	rfpNumberPattern = regexp.MustCompile(`(?i)RFP[#\s-]*(\d+[-\d]*)`)
	deadlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)deadline[:\s]+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)due\s+date[:\s]+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)submission\s+date[:\s]+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	}
)

// ExtractClientInfo guesses title, RFP number and deadline from the
// opening of the document. A title is a prominent line near the top,
// either all caps or title case.
func ExtractClientInfo(text string) *ClientInfo {
	info := &ClientInfo{}
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 20 || len(line) >= 150 {
			continue
		}
		if info.RFPTitle == "" && (isUpperLine(line) || isTitleLine(line)) {
			info.RFPTitle = line
		}
	}
	if match := rfpNumberPattern.FindStringSubmatch(text); match != nil {
		info.RFPNumber = match[1]
	}
	for _, pattern := range deadlinePatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			info.Deadline = match[1]
			break
		}
	}
	return info
}

func isUpperLine(s string) bool {
	return s == strings.ToUpper(s) && strings.ContainsFunc(s, unicode.IsLetter)
}

func isTitleLine(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	cased := false
	for _, word := range words {
		first, ok := firstLetter(word)
		if !ok {
			continue
		}
		cased = true
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return cased
}

func firstLetter(word string) (rune, bool) {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}
