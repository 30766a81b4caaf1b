package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"paytrack/internal/cli"
	"paytrack/internal/importer"
	"paytrack/internal/ledger"
	"paytrack/internal/model"
	"paytrack/internal/report"
)

func paymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage check payments",
	}

	cmd.AddCommand(paymentsAddCmd())
	cmd.AddCommand(paymentsListCmd())
	cmd.AddCommand(paymentsEditCmd())
	cmd.AddCommand(paymentsDeleteCmd())
	cmd.AddCommand(paymentsStatusCmd())

	return cmd
}

// draftFlags registers the payment field flags shared by add and edit.
func draftFlags(cmd *cobra.Command) {
	cmd.Flags().String("due", "", "due date (DD.MM.YYYY or YYYY-MM-DD)")
	cmd.Flags().String("check", "", "check number")
	cmd.Flags().String("bank", "", "bank name")
	cmd.Flags().String("company", "", "payee company")
	cmd.Flags().String("group", "", "business group")
	cmd.Flags().String("desc", "", "free-text description")
	cmd.Flags().String("amount", "", "amount, e.g. 1250.50 or 1.250,50")
}

// draftFromFlags builds a draft from the field flags, starting from base so
// edit keeps unchanged fields.
func draftFromFlags(cmd *cobra.Command, base model.PaymentDraft) (model.PaymentDraft, error) {
	draft := base

	if cmd.Flags().Changed("due") {
		raw, _ := cmd.Flags().GetString("due")
		due, err := importer.ParseDate(raw)
		if err != nil {
			return draft, err
		}
		draft.DueDate = due
	}
	if cmd.Flags().Changed("check") {
		draft.CheckNumber, _ = cmd.Flags().GetString("check")
	}
	if cmd.Flags().Changed("bank") {
		draft.Bank, _ = cmd.Flags().GetString("bank")
	}
	if cmd.Flags().Changed("company") {
		draft.Company, _ = cmd.Flags().GetString("company")
	}
	if cmd.Flags().Changed("group") {
		draft.BusinessGroup, _ = cmd.Flags().GetString("group")
	}
	if cmd.Flags().Changed("desc") {
		draft.Description, _ = cmd.Flags().GetString("desc")
	}
	if cmd.Flags().Changed("amount") {
		raw, _ := cmd.Flags().GetString("amount")
		amount, err := importer.ParseAmount(raw)
		if err != nil {
			return draft, err
		}
		draft.Amount = amount
	}

	return draft, nil
}

func paymentsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new check payment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			draft, err := draftFromFlags(cmd, model.PaymentDraft{})
			if err != nil {
				return err
			}

			p, err := a.payments.Create(draft, actor)
			if err != nil {
				return err
			}
			if err := a.savePayments(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded payment %s (check %s, %s)", p.ID, p.CheckNumber, p.AmountString())))
			return nil
		},
	}
	draftFlags(cmd)
	return cmd
}

func paymentsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			matched := report.Filter(a.payments.Payments(), criteria)
			printPaymentTable(matched)
			return nil
		},
	}

	cmd.Flags().String("month", "", "due month, YYYY-MM")
	cmd.Flags().String("check", "", "check number contains")
	cmd.Flags().String("desc", "", "description contains")
	cmd.Flags().String("amount", "", "amount contains")
	cmd.Flags().String("status", "", "status (pending or paid)")
	cmd.Flags().StringSlice("bank", nil, "banks to include (repeatable)")
	cmd.Flags().StringSlice("company", nil, "companies to include (repeatable)")
	cmd.Flags().StringSlice("group", nil, "business groups to include (repeatable)")

	return cmd
}

func criteriaFromFlags(cmd *cobra.Command) (report.Criteria, error) {
	var c report.Criteria

	if raw, _ := cmd.Flags().GetString("month"); raw != "" {
		t, err := time.Parse("2006-01", raw)
		if err != nil {
			return c, fmt.Errorf("invalid month %q, want YYYY-MM", raw)
		}
		m := report.MonthOf(t)
		c.Month = &m
	}

	c.CheckNumber, _ = cmd.Flags().GetString("check")
	c.Description, _ = cmd.Flags().GetString("desc")
	c.Amount, _ = cmd.Flags().GetString("amount")
	c.Banks, _ = cmd.Flags().GetStringSlice("bank")
	c.Companies, _ = cmd.Flags().GetStringSlice("company")
	c.BusinessGroups, _ = cmd.Flags().GetStringSlice("group")

	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		switch model.PaymentStatus(raw) {
		case model.StatusPending, model.StatusPaid:
			c.Status = model.PaymentStatus(raw)
		default:
			return c, fmt.Errorf("invalid status %q, want pending or paid", raw)
		}
	}

	return c, nil
}

func printPaymentTable(payments []model.Payment) {
	if len(payments) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No payments match."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDUE\tCHECK\tBANK\tCOMPANY\tGROUP\tAMOUNT\tSTATUS\tDESCRIPTION")

	var total float64
	for _, p := range payments {
		total += p.Amount
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			shortID(p.ID),
			p.DueDate.Format(importer.DateLayout),
			p.CheckNumber,
			p.Bank,
			p.Company,
			p.BusinessGroup,
			p.Amount,
			cli.FormatStatus(p.Status == model.StatusPaid),
			p.Description,
		)
	}
	fmt.Fprintf(w, "\t\t\t\t\t\t%.2f\t\t%d payments\n", total, len(payments))
	_ = w.Flush()
}

// shortID trims a uuid for table display; full ids still work everywhere.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// resolvePayment finds a payment by full id or unambiguous short prefix.
func resolvePayment(store *ledger.PaymentStore, id string) (model.Payment, error) {
	if p, err := store.Get(id); err == nil {
		return p, nil
	}

	var matches []model.Payment
	for _, p := range store.Payments() {
		if strings.HasPrefix(p.ID, id) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return model.Payment{}, fmt.Errorf("%w: payment %s", ledger.ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return model.Payment{}, fmt.Errorf("ambiguous payment id %q matches %d payments", id, len(matches))
	}
}

func paymentsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a payment's fields",
		Long:  "Edit replaces only the fields whose flags are given; the paid/pending status never changes here.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			current, err := resolvePayment(a.payments, args[0])
			if err != nil {
				return err
			}

			base := model.PaymentDraft{
				DueDate:       current.DueDate,
				CheckNumber:   current.CheckNumber,
				Bank:          current.Bank,
				Company:       current.Company,
				BusinessGroup: current.BusinessGroup,
				Description:   current.Description,
				Amount:        current.Amount,
			}
			draft, err := draftFromFlags(cmd, base)
			if err != nil {
				return err
			}

			p, err := a.payments.Update(current.ID, draft, actor)
			if err != nil {
				return err
			}
			if err := a.savePayments(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated payment %s", shortID(p.ID))))
			return nil
		},
	}
	draftFlags(cmd)
	return cmd
}

func paymentsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			p, err := resolvePayment(a.payments, args[0])
			if err != nil {
				return err
			}

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				ok, err := promptYesNo(cli.FormatPrompt(fmt.Sprintf(
					"Delete check %s (%s, %s)?", p.CheckNumber, p.Bank, p.AmountString())))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := a.payments.Delete(p.ID, actor); err != nil {
				return err
			}
			if err := a.savePayments(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted payment %s", shortID(p.ID))))
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}

func paymentsStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Toggle a payment between pending and paid",
		Long:  "Toggling a paid payment back to pending asks for confirmation first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			p, err := resolvePayment(a.payments, args[0])
			if err != nil {
				return err
			}

			needsConfirm, err := a.payments.RequestStatusChange(p.ID, actor)
			if err != nil {
				return err
			}

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if needsConfirm && !skipConfirm {
				ok, err := promptYesNo(cli.FormatPrompt(fmt.Sprintf(
					"Check %s is marked paid. Mark it pending again?", p.CheckNumber)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			updated, err := a.payments.ConfirmStatusChange(p.ID, actor)
			if err != nil {
				return err
			}
			if err := a.savePayments(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Check %s is now %s",
				updated.CheckNumber, cli.FormatStatus(updated.Status == model.StatusPaid))))
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}
