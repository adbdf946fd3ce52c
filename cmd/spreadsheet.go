package cmd

import (
	"github.com/spf13/cobra"

	"gsheet_bridge/internal/gsheet"
)

func newCreateCmd() *cobra.Command {
	var title, sheets string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new spreadsheet",
		Long:  "Create a new spreadsheet.\nExample: gsheet-bridge create --title Budget --sheets 'Income,Expenses'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(newSheetsClient().CreateSpreadsheet(cmd.Context(), gsheet.CreateSpreadsheetParams{
				Title:     title,
				SheetList: sheets,
			}))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Spreadsheet title (defaults to Untitled)")
	cmd.Flags().StringVar(&sheets, "sheets", "", "Sheet names, comma or whitespace separated")
	return cmd
}

func newMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Get spreadsheet metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(newSheetsClient().Metadata(cmd.Context(), sheetRef()))
		},
	}
}
