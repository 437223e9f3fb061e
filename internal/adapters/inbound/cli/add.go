package cli

import (
	"errors"
	"fmt"

	"github.com/billfold/billfold/internal/adapters/outbound/tui"
	"github.com/billfold/billfold/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		customer string
		amount   string
		date     string
		terms    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new invoice",
		Long:  "Record a new invoice. The due date is derived from the invoice date and payment terms; the invoice starts unpaid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(cmd)
			if err != nil {
				return err
			}

			today := domain.Today()
			if date == "" {
				date = today.String()
			}
			if terms == 0 {
				terms = cfg.DefaultTerms
			}

			draft := domain.InvoiceDraft{
				CustomerName: customer,
				Amount:       amount,
				InvoiceDate:  date,
				PaymentTerms: terms,
			}

			inv, err := svc.Add(draft, today)
			if err != nil {
				var verrs domain.ValidationErrors
				if errors.As(err, &verrs) {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationErrors(verrs))
					return errors.New("invoice not recorded")
				}
				return fmt.Errorf("adding invoice: %w", err)
			}

			view := domain.InvoiceView{
				Invoice:  inv,
				Status:   domain.DeriveStatus(inv, today),
				DaysInfo: domain.DeriveAgingText(inv, today),
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInvoice(view, cfg.CurrencySymbol))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Customer name (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "Invoice amount (required, must be positive)")
	cmd.Flags().StringVar(&date, "date", "", "Invoice date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().IntVar(&terms, "terms", 0, "Payment terms in days, typically 7/15/30/45/60 (defaults to config)")

	return cmd
}
