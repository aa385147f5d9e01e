package llm

import (
	"regexp"
	"strings"
)

// Models often wrap JSON in fenced blocks or surround it with
// commentary despite instructions not to. Extraction tries, in order:
// a fence tagged json, any fence, then the trimmed raw text.
var (
	jsonFenceRe    = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	genericFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON recovers a candidate JSON payload from a free-text model
// reply. It does not parse the payload; callers decide what a parse
// failure means.
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if m := jsonFenceRe.FindStringSubmatch(cleaned); m != nil {
		return strings.TrimSpace(m[1])
	}

	if m := genericFenceRe.FindStringSubmatch(cleaned); m != nil {
		return strings.TrimSpace(m[1])
	}

	return cleaned
}
