package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/export/pdf"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var (
	inFile        string
	outFile       string
	templateID    string
	preview       bool
	chromePath    string
	settleTimeout time.Duration
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, t := range render.DefaultRegistry().List() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID(), t.Name(), t.Description())
		}
		return w.Flush()
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the HTML page a template produces",
	RunE:  runRender,
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export a single-page PDF through headless Chrome",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExport(cmd.Context(), domain.FormatPDF)
	},
}

var docxCmd = &cobra.Command{
	Use:   "docx",
	Short: "Export a Word document",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExport(cmd.Context(), domain.FormatDOCX)
	},
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, pdfCmd, docxCmd} {
		c.Flags().StringVarP(&inFile, "in", "i", "", "Path to resume JSON file (required)")
		c.Flags().StringVarP(&outFile, "out", "o", "", "Output path (defaults to the derived file name)")
		c.Flags().StringVarP(&templateID, "template", "t", "", "Template id, overriding selectedTemplateId")
		if err := c.MarkFlagRequired("in"); err != nil {
			panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
		}
	}
	renderCmd.Flags().BoolVar(&preview, "preview", false, "Show placeholders for missing header fields")
	pdfCmd.Flags().StringVar(&chromePath, "chrome", "", "Chrome executable (defaults to CHROME_PATH)")
	pdfCmd.Flags().DurationVar(&settleTimeout, "timeout", pdf.DefaultSettleTimeout, "How long to wait for the page to settle")

	rootCmd.AddCommand(templatesCmd, renderCmd, pdfCmd, docxCmd)
}

func loadResume() (*model.Resume, error) {
	raw, err := os.ReadFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	r, err := usecase.Decode(raw)
	if err != nil {
		return nil, err
	}
	if templateID != "" {
		r.SelectedTemplateID = &templateID
	}
	return r, nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	r, err := loadResume()
	if err != nil {
		return err
	}
	tpl, err := render.DefaultRegistry().Lookup(r.SelectedTemplateID)
	if err != nil {
		return err
	}
	page, err := render.HTML(tpl.Render(r, render.Options{Preview: preview}))
	if err != nil {
		return err
	}
	if outFile == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), page)
		return err
	}
	return os.WriteFile(outFile, []byte(page), 0o644)
}

func runExport(ctx context.Context, f domain.Format) error {
	r, err := loadResume()
	if err != nil {
		return err
	}
	templates := render.DefaultRegistry()
	mounter := infra.NewChromedpMounter(chromePath)
	ex := usecase.NewExporter(templates, pdf.NewExporter(mounter, settleTimeout), nil)

	res, err := ex.Export(ctx, r, f)
	if err != nil {
		return fmt.Errorf("%s (%w)", domain.UserMessage(err), err)
	}
	path := outFile
	if path == "" {
		path = res.FileName
	}
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(res.Data))
	return nil
}
