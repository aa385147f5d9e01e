package compiler

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdflatexAvailable() bool {
	_, err := exec.LookPath("pdflatex")
	return err == nil
}

func TestCompilationError_Formatting(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &CompilationError{Message: "no PDF was generated", LogOutput: "! Undefined control sequence.", Cause: cause}

	assert.Contains(t, err.Error(), "no PDF was generated")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.LogOutput, "Undefined control sequence")
}

func TestPDF_MinimalDocument(t *testing.T) {
	if !pdflatexAvailable() {
		t.Skip("pdflatex not installed")
	}

	markup := "\\documentclass{article}\n\\begin{document}\nhello\n\\end{document}\n"
	pdf, logOutput, err := PDF(context.Background(), markup)
	require.NoError(t, err, "log: %s", logOutput)

	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"), "output should be a PDF document")
}

func TestPDF_MalformedMarkup(t *testing.T) {
	if !pdflatexAvailable() {
		t.Skip("pdflatex not installed")
	}

	// \undefinedmacro aborts compilation in nonstopmode without a PDF.
	markup := "\\documentclass{article}\n\\begin{document}\n\\undefinedmacro\n"
	pdf, logOutput, err := PDF(context.Background(), markup)

	var compErr *CompilationError
	require.True(t, errors.As(err, &compErr))
	assert.NotEmpty(t, logOutput)
	_ = pdf // may or may not exist depending on where pdflatex gave up
}
