package cmd

import (
	"github.com/spf13/cobra"

	"gsheet_bridge/internal/gsheet"
)

func newExportCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a spreadsheet via Drive",
		Long:  "Export a spreadsheet to pdf, xlsx, csv or tsv via the Drive export endpoint.\nExample: gsheet-bridge export --id <spreadsheetId> --format xlsx --out budget.xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(newSheetsClient().ExportSpreadsheet(cmd.Context(), gsheet.ExportParams{
				SpreadsheetID: sheetRef().ResolveID(),
				Format:        format,
				OutPath:       out,
			}))
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "Export format: pdf, xlsx, csv or tsv")
	cmd.Flags().StringVar(&out, "out", "", "Output file path")
	return cmd
}
