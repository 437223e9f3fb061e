package cli

import (
	"fmt"

	"github.com/billfold/billfold/internal/adapters/outbound/tui"
	"github.com/billfold/billfold/internal/domain"
	"github.com/spf13/cobra"
)

func newPayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "pay INVOICE-ID",
		Short: "Mark an invoice as paid",
		Long:  "Mark an invoice as paid. The payment date is recorded once and cannot be changed afterwards.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(cmd)
			if err != nil {
				return err
			}

			today := domain.Today()
			paymentDate := today
			if date != "" {
				if paymentDate, err = domain.ParseDate(date); err != nil {
					return err
				}
			}

			view, err := svc.Pay(args[0], paymentDate, today)
			if err != nil {
				return fmt.Errorf("marking invoice paid: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInvoice(view, cfg.CurrencySymbol))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Payment date as YYYY-MM-DD (defaults to today)")
	return cmd
}
