package meeting

import (
	"regexp"
	"strings"
)

// ExtractSection returns the text between the bracketed label and the next
// bracketed header (or end of input), trimmed. The label is matched literally,
// across line breaks, first occurrence only. An absent label yields "", which
// is not an error. If the model echoes bracket syntax inside a section body
// the section is truncated at that point; callers see a short section rather
// than a failure.
func ExtractSection(text, label string) string {
	pattern := regexp.MustCompile(`(?s)\[` + regexp.QuoteMeta(label) + `\](.*?)(?:\[|$)`)
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ParseAnalysis splits one raw model response into the three fixed sections.
// All three fields come from the same pass over the same text.
func ParseAnalysis(text string) AnalysisResult {
	return AnalysisResult{
		ThreeLine: ExtractSection(text, LabelThreeLine),
		Todo:      ExtractSection(text, LabelTodo),
		Detailed:  ExtractSection(text, LabelDetailed),
	}
}
