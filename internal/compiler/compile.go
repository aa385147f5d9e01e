// Package compiler submits LaTeX markup to the external pdflatex
// toolchain and returns the compiled PDF document.
package compiler

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single compilation when the caller's context
// carries no deadline.
const DefaultTimeout = 30 * time.Second

const texBaseName = "resume.tex"

// PDF compiles LaTeX markup into PDF bytes using pdflatex.
//
// The adapter performs no markup validation itself; malformed markup
// surfaces only as a *CompilationError carrying the compiler's log.
// The returned log is also provided on success for diagnostics.
func PDF(ctx context.Context, markup string) (pdf []byte, logOutput string, err error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, "", &CompilationError{
			Message: "pdflatex not found in PATH; install a LaTeX distribution (e.g. TeX Live)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "resume-compile-*")
	if err != nil {
		return nil, "", &CompilationError{
			Message: "failed to create temporary working directory",
			Cause:   err,
		}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, texBaseName)
	if err := os.WriteFile(texPath, []byte(markup), 0644); err != nil {
		return nil, "", &CompilationError{
			Message: "failed to write LaTeX source to working directory",
			Cause:   err,
		}
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	// -interaction=nonstopmode prevents interactive prompts on errors.
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	pdfPath := filepath.Join(workDir, strings.TrimSuffix(texBaseName, ".tex")+".pdf")
	pdfBytes, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		// No PDF produced: hard compilation failure.
		return nil, logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: no PDF was generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// pdflatex can exit non-zero yet still emit a usable PDF.
	if runErr != nil {
		return pdfBytes, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return pdfBytes, logOutput, nil
}
