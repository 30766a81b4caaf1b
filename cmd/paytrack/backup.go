package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paytrack/internal/cli"
	"paytrack/internal/importer"
)

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file.json>",
		Short: "Write all payments to a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			payments := a.payments.Payments()
			if err := importer.WriteBackup(args[0], payments); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Backed up %d payments to %s", len(payments), args[0])))
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <file.json>",
		Short: "Replace all payments with a JSON backup",
		Long:  "Restore discards every current payment and loads the backup in its place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			backup, err := importer.ReadBackup(args[0])
			if err != nil {
				return err
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

			current := len(a.payments.Payments())
			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				ok, err := promptYesNo(cli.FormatPrompt(fmt.Sprintf(
					"Replace %d current payments with %d from the backup?", current, len(backup))))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := a.payments.Restore(backup, actor); err != nil {
				return err
			}
			if err := a.savePayments(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored %d payments", len(backup))))
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}
