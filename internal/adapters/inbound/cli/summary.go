package cli

import (
	"fmt"

	"github.com/billfold/billfold/internal/adapters/outbound/tui"
	"github.com/billfold/billfold/internal/domain"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var (
		status     string
		search     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show portfolio cash-flow figures",
		Long:  "Show outstanding, overdue, and collected totals plus the average payment delay. The figures cover the same filtered set that list shows.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(cmd)
			if err != nil {
				return err
			}

			q, err := parseQuery(status, search, "", "")
			if err != nil {
				return err
			}

			sum, err := svc.Summarize(q, domain.Today())
			if err != nil {
				return fmt.Errorf("summarizing ledger: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, sum)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(sum, cfg.CurrencySymbol))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status: all, pending, overdue, or paid")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match on invoice ID or customer name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")

	return cmd
}
