package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// ContentPlaceholder is the substitution token the outer template must
// contain exactly once.
const ContentPlaceholder = "{{CONTENT}}"

//go:embed templates/jake-resume.tex
var defaultTemplate string

// FullDocument renders the record's sections and splices them into the
// embedded default template.
func FullDocument(r *types.ResumeData) (string, error) {
	return SpliceTemplate(defaultTemplate, r)
}

// SpliceTemplate splices the rendered sections into an outer template.
// A template with zero or multiple placeholder occurrences is a fatal
// configuration error, not something to paper over.
func SpliceTemplate(template string, r *types.ResumeData) (string, error) {
	count := strings.Count(template, ContentPlaceholder)
	if count != 1 {
		return "", &TemplateError{
			Message: fmt.Sprintf("template must contain exactly one %s placeholder, found %d", ContentPlaceholder, count),
		}
	}

	return strings.Replace(template, ContentPlaceholder, Resume(r), 1), nil
}

// LoadTemplate reads an alternative outer template from disk, for
// deployments that override the embedded one.
func LoadTemplate(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	return string(content), nil
}
