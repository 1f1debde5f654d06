package processor

import "strings"

// RenderTemplate substitutes {{variable}} placeholders with their values.
// Unknown placeholders are left intact so missing data stays visible.
func RenderTemplate(text string, values map[string]string) string {
	return variablePattern.ReplaceAllStringFunc(text, func(match string) string {
		name := variablePattern.FindStringSubmatch(match)[1]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}

// splitDraft splits a generated draft into subject and body. The draft is
// expected to start with a "Subject: " line followed by a blank line.
func splitDraft(draft string) (string, string) {
	draft = strings.TrimSpace(draft)
	subject := "Introduction"
	body := draft

	if idx := strings.Index(draft, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(draft[:idx])
		if rest, ok := strings.CutPrefix(firstLine, "Subject:"); ok {
			subject = strings.TrimSpace(rest)
			body = strings.TrimSpace(draft[idx+1:])
		}
	} else if rest, ok := strings.CutPrefix(draft, "Subject:"); ok {
		subject = strings.TrimSpace(rest)
		body = ""
	}
	return subject, body
}
