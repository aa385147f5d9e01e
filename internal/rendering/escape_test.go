package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_EachSpecialCharacter(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"A & B", `A \& B`},
		{"100% complete", `100\% complete`},
		{"cost $100", `cost \$100`},
		{"issue #123", `issue \#123`},
		{"variable_name", `variable\_name`},
		{"text{with}braces", `text\{with\}braces`},
		{"approx~equal", `approx\textasciitilde{}equal`},
		{"x^2", `x\textasciicircum{}2`},
		{"back\\slash", `back\textbackslash{}slash`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}

func TestEscapeLaTeX_Unicode(t *testing.T) {
	assert.Equal(t, "Zoë Müller — résumé", EscapeLaTeX("Zoë Müller — résumé"))
}

// unescapeLaTeX reverses EscapeLaTeX. Longer sequences first so the
// brace-terminated escapes are not mangled by the shorter ones.
func unescapeLaTeX(text string) string {
	replacements := []struct{ from, to string }{
		{`\textbackslash{}`, `\`},
		{`\textasciitilde{}`, `~`},
		{`\textasciicircum{}`, `^`},
		{`\&`, `&`},
		{`\%`, `%`},
		{`\$`, `$`},
		{`\#`, `#`},
		{`\_`, `_`},
		{`\{`, `{`},
		{`\}`, `}`},
	}
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}

func TestEscapeLaTeX_ReversibleForAllSpecials(t *testing.T) {
	inputs := []string{
		"& % $ # _ { } ~ ^ \\",
		"\\\\double and ~~tildes^^",
		"R&D: 50% faster $builds #1 on some_platform {at} ~peak^load\\",
		"plain text survives untouched",
	}

	for _, input := range inputs {
		escaped := EscapeLaTeX(input)
		assert.Equal(t, input, unescapeLaTeX(escaped), "input %q", input)
	}
}
