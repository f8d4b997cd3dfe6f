// Command export renders and exports resume documents from the command line.
package main

import (
	"fmt"
	"os"

	"resume-builder/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "export",
	Short: "Render resumes to HTML, PDF or DOCX",
	Long:  "Renders a resume JSON document with one of the built-in templates and exports it as an HTML page, a single-page PDF or a Word document.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger.Init(logger.Config{Level: level, Format: "pretty"})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
