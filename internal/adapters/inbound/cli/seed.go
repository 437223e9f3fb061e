package cli

import (
	"fmt"

	"github.com/billfold/billfold/internal/domain"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		count int
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample ledger",
		Long:  "Replace the ledger with randomly generated sample invoices. Refuses to overwrite an existing ledger unless --force is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(cmd)
			if err != nil {
				return err
			}

			invoices, err := svc.Seed(count, force, domain.Today())
			if err != nil {
				return fmt.Errorf("seeding ledger: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d sample invoices in %s\n", len(invoices), cfg.LedgerPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of sample invoices to generate")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing ledger")

	return cmd
}
