package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gsheet_bridge/internal/app"
	"gsheet_bridge/internal/googleauth"
	"gsheet_bridge/internal/gsheet"
)

// rootCmd represents the base command for the gsheet-bridge application
var rootCmd = &cobra.Command{
	Use:   "gsheet-bridge",
	Short: "Thin Google Sheets client",
	Long: `gsheet-bridge reads, writes, appends, clears, creates and exports
Google Sheets spreadsheets. Spreadsheets are addressed either by ID
(--id) or by shareable link (--link).

Credentials come from GOOGLE_CREDENTIALS_FILE (service account or OAuth
client JSON) and GOOGLE_TOKEN_FILE for cached user tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagID   string
	flagLink string
)

// Execute is the main entry point for the CLI application
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagID, "id", "", "Spreadsheet ID")
	rootCmd.PersistentFlags().StringVar(&flagLink, "link", "", "Shareable spreadsheet link")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newAppendCmd())
	rootCmd.AddCommand(newAppendRowCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newMetadataCmd())
	rootCmd.AddCommand(newExportCmd())
}

// newSheetsClient builds the client from the environment configuration
var newSheetsClient = func() *gsheet.Client {
	cfg := app.LoadConfig()
	return gsheet.NewClient(gsheet.Options{
		Auth: googleauth.NewProvider(cfg.CredentialsFile, cfg.TokenFile),
	})
}

// sheetRef resolves the target spreadsheet from flags, falling back to the
// SPREADSHEET_ID environment default
func sheetRef() gsheet.Ref {
	ref := gsheet.Ref{SpreadsheetID: flagID, Link: flagLink}
	if ref.ResolveID() == "" {
		ref.SpreadsheetID = app.LoadConfig().SpreadsheetID
	}
	return ref
}

// printResult writes the envelope as JSON and reports failure for the
// process exit code
func printResult(res *gsheet.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	if !res.OK {
		return errors.New(res.Error)
	}
	return nil
}
