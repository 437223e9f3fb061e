package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "billfold",
		Short:         "Track invoices and cash flow from your terminal",
		Long:          "Billfold records invoices, derives payment status and aging, and keeps portfolio cash-flow figures in a local JSON ledger.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("ledger", "", "Path to the ledger file (overrides config)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newPayCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
