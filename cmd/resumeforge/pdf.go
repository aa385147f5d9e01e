package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/rendering"
)

var (
	pdfRecordFile   string
	pdfOutFile      string
	pdfTemplateFile string
	pdfKeepTex      string
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Render and compile a record to PDF",
	Long:  "Renders a structured record into LaTeX and compiles it with pdflatex. On compilation failure the typesetter log is printed to stderr.",
	RunE:  runPDF,
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfRecordFile, "record", "r", "", "Path to record JSON file (required)")
	pdfCmd.Flags().StringVarP(&pdfOutFile, "out", "o", "resume.pdf", "Path to output PDF file")
	pdfCmd.Flags().StringVarP(&pdfTemplateFile, "template", "t", "", "Path to an alternative outer template (optional)")
	pdfCmd.Flags().StringVar(&pdfKeepTex, "keep-tex", "", "Also write the intermediate LaTeX to this path")
	_ = pdfCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, _ []string) error {
	record, err := loadRecord(pdfRecordFile)
	if err != nil {
		return err
	}

	var doc string
	if pdfTemplateFile != "" {
		template, err := rendering.LoadTemplate(pdfTemplateFile)
		if err != nil {
			return err
		}
		doc, err = rendering.SpliceTemplate(template, record)
		if err != nil {
			return err
		}
	} else {
		doc, err = rendering.FullDocument(record)
		if err != nil {
			return err
		}
	}

	if pdfKeepTex != "" {
		if err := writeFile(pdfKeepTex, []byte(doc)); err != nil {
			return err
		}
	}

	pdf, logOutput, err := compiler.PDF(cmd.Context(), doc)
	if err != nil {
		var compileErr *compiler.CompilationError
		if errors.As(err, &compileErr) && logOutput != "" {
			fmt.Fprintln(os.Stderr, logOutput)
		}
		return fmt.Errorf("failed to compile PDF: %w", err)
	}

	if err := writeFile(pdfOutFile, pdf); err != nil {
		return err
	}

	fmt.Printf("Compiled PDF resume (%d bytes)\n", len(pdf))
	fmt.Printf("Output: %s\n", pdfOutFile)
	return nil
}
