// Package main provides the CLI entry point for split-rename-pdf.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alvaro-alvarez-redondo/split-rename-pdf/pkg/splitpdf"
)

var (
	workDir   string
	assumeYes bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "split-rename-pdf",
		Short: "Split a PDF into named slices driven by a mapping spreadsheet",
		Long: `split-rename-pdf looks for exactly one PDF and a mapping spreadsheet
in the working directory, then writes one output PDF per spreadsheet
row, named from the row's fields. On first run it creates an empty
mapping template to fill out.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&workDir, "dir", ".", "Working directory holding the source PDF and mapping table")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every prompt")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := splitpdf.DefaultOptions()
	opts.Dir = workDir
	opts.AssumeYes = assumeYes
	return splitpdf.Run(opts)
}
