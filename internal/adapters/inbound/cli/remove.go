package cli

import (
	"fmt"

	"github.com/billfold/billfold/internal/domain"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove INVOICE-ID",
		Short: "Delete an invoice from the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildService(cmd)
			if err != nil {
				return err
			}

			removed, err := svc.Remove(args[0], domain.Today())
			if err != nil {
				return fmt.Errorf("removing invoice: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", removed.ID, removed.CustomerName)
			return nil
		},
	}
}
