package cli

import (
	"fmt"

	"github.com/billfold/billfold/internal/adapters/outbound/tui"
	"github.com/billfold/billfold/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		status     string
		search     string
		sortField  string
		sortOrder  string
		page       int
		pageSize   int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices with filtering, searching, sorting, and pagination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(cmd)
			if err != nil {
				return err
			}

			q, err := parseQuery(status, search, sortField, sortOrder)
			if err != nil {
				return err
			}
			if pageSize == 0 {
				pageSize = cfg.PageSize
			}

			pg, err := svc.ListPage(q, pageSize, page, domain.Today())
			if err != nil {
				return fmt.Errorf("listing invoices: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, pg)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInvoiceTable(pg, cfg.CurrencySymbol))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status: all, pending, overdue, or paid")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match on invoice ID or customer name")
	cmd.Flags().StringVar(&sortField, "sort", "date", "Sort field: amount, date, or dueDate")
	cmd.Flags().StringVar(&sortOrder, "order", "desc", "Sort order: asc or desc")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (clamped to the available range)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Invoices per page (defaults to config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the page as JSON")

	return cmd
}
