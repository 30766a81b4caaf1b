package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"paytrack/internal/cli"
	"paytrack/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate totals per bank",
		Long: `Summary shows four views over the ledger: all payments, paid payments,
the pending remainder, and the current calendar month. Each view lists a
per-bank breakdown sorted by descending amount.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			overview := report.BuildOverview(a.payments.Payments(), time.Now())

			printTotals("All Payments", overview.All)
			printTotals("Paid", overview.Paid)
			printTotals("Remaining", overview.Pending)
			printTotals(time.Now().Format("January 2006"), overview.CurrentMonth)
			fmt.Printf("  %s %.2f\n", cli.PaidStyle.Render("paid this month:"), overview.CurrentMonthPaid)
			fmt.Printf("  %s %.2f\n", cli.PendingStyle.Render("pending this month:"), overview.CurrentMonthPending)
			return nil
		},
	}
}

func printTotals(title string, t report.Totals) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("%s: %.2f", title, t.Total)))
	for _, b := range t.ByBank {
		fmt.Printf("  %-30s %12.2f\n", b.Bank, b.Amount)
	}
	fmt.Println()
}
