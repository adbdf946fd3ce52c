package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gsheet_bridge/internal/gsheet"
)

func newGetCmd() *cobra.Command {
	var sheet, rangeA1 string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get values from a range",
		Long:  "Get values from a range.\nExample: gsheet-bridge get --id 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --sheet Sheet1 --range A1:B10",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := newSheetsClient().GetValues(cmd.Context(), gsheet.GetValuesParams{
				Ref:       sheetRef(),
				SheetName: sheet,
				Range:     rangeA1,
			})
			if !res.OK || asJSON {
				return printResult(res)
			}
			return printGrid(res)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet (tab) name")
	cmd.Flags().StringVar(&rangeA1, "range", "", "A1 range, e.g. A1:C10")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result envelope")
	return cmd
}

// printGrid renders returned rows as tab-aligned text
func printGrid(res *gsheet.Result) error {
	data, _ := res.Data.(map[string]any)
	rows, _ := data["values"].([]any)
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No data found")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		row, _ := r.([]any)
		fmt.Fprintln(tw, strings.Join(gsheet.RowStrings(row), "\t"))
	}
	return tw.Flush()
}

func newSetCmd() *cobra.Command {
	var sheet, rangeA1, values, valuesJSON, inputOption string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update values in a range",
		Long:  "Update values in a range.\nRows are comma separated, cells pipe separated: --values 'a|b,c|d'. JSON grids go through --values-json.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(newSheetsClient().Update(cmd.Context(), gsheet.LegacyWriteParams{
				SpreadsheetID:    sheetRef().ResolveID(),
				Sheet:            sheet,
				Range:            rangeA1,
				Values:           values,
				ValuesJSON:       valuesJSON,
				ValueInputOption: inputOption,
			}))
		},
	}

	addWriteFlags(cmd, &sheet, &rangeA1, &values, &valuesJSON, &inputOption)
	return cmd
}

func newAppendCmd() *cobra.Command {
	var sheet, rangeA1, values, valuesJSON, inputOption string

	cmd := &cobra.Command{
		Use:   "append",
		Short: "Append values after existing data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(newSheetsClient().Append(cmd.Context(), gsheet.LegacyWriteParams{
				SpreadsheetID:    sheetRef().ResolveID(),
				Sheet:            sheet,
				Range:            rangeA1,
				Values:           values,
				ValuesJSON:       valuesJSON,
				ValueInputOption: inputOption,
			}))
		},
	}

	addWriteFlags(cmd, &sheet, &rangeA1, &values, &valuesJSON, &inputOption)
	return cmd
}

func newAppendRowCmd() *cobra.Command {
	var sheet, inputOption string

	cmd := &cobra.Command{
		Use:   "append-row <cell>...",
		Short: "Append a single row of cells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row := make([]any, len(args))
			for i, a := range args {
				row[i] = a
			}
			return printResult(newSheetsClient().AppendRow(cmd.Context(), gsheet.AppendRowParams{
				SpreadsheetID:    sheetRef().ResolveID(),
				Values:           row,
				Sheet:            sheet,
				ValueInputOption: inputOption,
			}))
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet (tab) name")
	cmd.Flags().StringVar(&inputOption, "value-input-option", "", "USER_ENTERED or RAW")
	return cmd
}

func newClearCmd() *cobra.Command {
	var sheet, rangeA1 string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear values in a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(newSheetsClient().ClearRange(cmd.Context(), gsheet.ClearRangeParams{
				Ref:       sheetRef(),
				SheetName: sheet,
				Range:     rangeA1,
			}))
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet (tab) name")
	cmd.Flags().StringVar(&rangeA1, "range", "", "A1 range, e.g. A1:C10")
	return cmd
}

func addWriteFlags(cmd *cobra.Command, sheet, rangeA1, values, valuesJSON, inputOption *string) {
	cmd.Flags().StringVar(sheet, "sheet", "", "Sheet (tab) name")
	cmd.Flags().StringVar(rangeA1, "range", "", "A1 range, e.g. A1:C10")
	cmd.Flags().StringVar(values, "values", "", "Grid as 'a|b,c|d' (rows on comma, cells on pipe)")
	cmd.Flags().StringVar(valuesJSON, "values-json", "", "Grid as JSON, e.g. '[[\"a\",\"b\"]]'")
	cmd.Flags().StringVar(inputOption, "value-input-option", "", "USER_ENTERED or RAW")
}
