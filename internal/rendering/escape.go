// Package rendering deterministically converts structured resume records
// into LaTeX markup.
package rendering

import "strings"

// EscapeLaTeX escapes the ten LaTeX-special ASCII characters:
// & % $ # _ { } ~ ^ \
// Every piece of caller- or model-controlled text passes through here
// before insertion into markup; this is the pipeline's sole
// injection-safety boundary.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '$':
			result.WriteString(`\$`)
		case '#':
			result.WriteString(`\#`)
		case '_':
			result.WriteString(`\_`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '\\':
			result.WriteString(`\textbackslash{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
