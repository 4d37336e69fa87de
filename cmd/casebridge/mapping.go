package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/casebridge/fieldmap"
)

func mappingCmd() *cobra.Command {
	var (
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Print the field mapping reference table",
		Long: `Prints the CASE 1.1 to IEEE SCD / ASN-CTDL field mapping reference
table, including fields with no target equivalent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMapping(format, outputPath)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runMapping(format, outputPath string) error {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fieldmap.Reference())
	case "csv":
		return fieldmap.WriteCSV(w)
	default:
		return fmt.Errorf("unknown format %q (expected json or csv)", format)
	}
}
