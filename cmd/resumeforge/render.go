package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/rendering"
)

var (
	renderRecordFile   string
	renderOutFile      string
	renderTemplateFile string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a record as a LaTeX document",
	Long:  "Deterministically renders a structured record into a complete LaTeX resume. The same record always produces the same document.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderRecordFile, "record", "r", "", "Path to record JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "resume.tex", "Path to output LaTeX file")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to an alternative outer template (optional)")
	_ = renderCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	record, err := loadRecord(renderRecordFile)
	if err != nil {
		return err
	}

	var doc string
	if renderTemplateFile != "" {
		template, err := rendering.LoadTemplate(renderTemplateFile)
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

	if err := writeFile(renderOutFile, []byte(doc)); err != nil {
		return err
	}

	fmt.Printf("Rendered LaTeX resume\n")
	fmt.Printf("Output: %s\n", renderOutFile)
	return nil
}
