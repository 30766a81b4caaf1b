package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"paytrack/internal/cli"
	"paytrack/internal/importer"
	"paytrack/internal/ledger"
)

// importChunkSize bounds how many rows go through one bulk call so the
// progress bar advances meaningfully on large sheets.
const importChunkSize = 50

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import payments from an .xlsx spreadsheet",
		Long: `Import reads payment rows from a spreadsheet in the export layout.
Malformed rows are reported and skipped; every well-formed row is imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			records, err := importer.ReadRecords(args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to import."))
				return nil
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetDescription("Importing payments"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var imported int
			var failed []*ledger.ValidationError
			for start := 0; start < len(records); start += importChunkSize {
				end := min(start+importChunkSize, len(records))

				result, err := a.payments.BulkImport(records[start:end], actor)
				if err != nil {
					return err
				}
				imported += len(result.Imported)
				for _, f := range result.Failed {
					// Row numbers restart per chunk; rebase onto the sheet.
					f.Row += start
					failed = append(failed, f)
				}
				_ = bar.Add(end - start)
			}
			_ = bar.Finish()

			if err := a.savePayments(ctx); err != nil {
				return err
			}

			for _, f := range failed {
				fmt.Println(cli.FormatWarning(f.Error()))
			}
			slog.Info("import finished", "imported", imported, "failed", len(failed))
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d payments (%d rejected)", imported, len(failed))))
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export all payments to an .xlsx spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			payments := a.payments.Payments()
			if err := importer.WriteRecords(args[0], payments); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d payments to %s", len(payments), args[0])))
			return nil
		},
	}
}
