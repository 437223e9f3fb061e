package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/billfold/billfold/internal/adapters/inbound/cli"
	"github.com/billfold/billfold/internal/adapters/outbound/store"
	"github.com/billfold/billfold/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLedger writes a three-invoice ledger with one invoice in each
// status, anchored to today so derivation stays deterministic.
func seedLedger(t *testing.T) string {
	t.Helper()
	today := domain.Today()
	paidOn := today

	invoices := []domain.Invoice{
		{
			ID:           "INV-001",
			CustomerName: "Mahindra Logistics",
			Amount:       decimal.NewFromInt(45000),
			InvoiceDate:  domain.AddDays(today, -40),
			PaymentTerms: 30,
			DueDate:      domain.AddDays(today, -10),
			PaymentDate:  &paidOn,
		},
		{
			ID:           "INV-002",
			CustomerName: "Apex Textiles",
			Amount:       decimal.NewFromInt(12500),
			InvoiceDate:  domain.AddDays(today, -31),
			PaymentTerms: 30,
			DueDate:      domain.AddDays(today, -1),
		},
		{
			ID:           "INV-003",
			CustomerName: "Nilgiri Exports",
			Amount:       decimal.NewFromInt(30000),
			InvoiceDate:  today,
			PaymentTerms: 30,
			DueDate:      domain.AddDays(today, 30),
		},
	}

	path := filepath.Join(t.TempDir(), "invoices.json")
	require.NoError(t, store.New(path).Save(invoices))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "list", "--ledger", ledger)
	require.NoError(t, err)
	assert.Contains(t, output, "INV-001")
	assert.Contains(t, output, "INV-002")
	assert.Contains(t, output, "INV-003")
	assert.Contains(t, output, "Showing 1 - 3 of 3 invoices")
}

func TestListCommand_StatusFilter(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "list", "--ledger", ledger, "--status", "overdue")
	require.NoError(t, err)
	assert.Contains(t, output, "INV-002")
	assert.NotContains(t, output, "INV-001")
	assert.NotContains(t, output, "INV-003")
}

func TestListCommand_Search(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "list", "--ledger", ledger, "--search", "nilgiri")
	require.NoError(t, err)
	assert.Contains(t, output, "Nilgiri Exports")
	assert.NotContains(t, output, "Apex Textiles")
}

func TestListCommand_JSON(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "list", "--ledger", ledger, "--sort", "amount", "--order", "asc", "--json")
	require.NoError(t, err)

	var page struct {
		Items []struct {
			ID       string `json:"id"`
			Status   string `json:"status"`
			DaysInfo string `json:"daysInfo"`
		} `json:"items"`
		TotalItems int `json:"totalItems"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &page), "output should be valid JSON")
	require.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, "INV-002", page.Items[0].ID, "ascending amount puts the smallest first")
	assert.Equal(t, "overdue", page.Items[0].Status)
	assert.Equal(t, "Overdue by 1 day", page.Items[0].DaysInfo)
}

func TestListCommand_Pagination(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "list", "--ledger", ledger, "--page-size", "2", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Showing 3 - 3 of 3 invoices")
	assert.Contains(t, output, "Page 2 of 2")
}

func TestListCommand_PageClamped(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "list", "--ledger", ledger, "--page-size", "2", "--page", "99")
	require.NoError(t, err)
	assert.Contains(t, output, "Page 2 of 2")
}

func TestListCommand_BadStatus(t *testing.T) {
	ledger := seedLedger(t)
	_, err := runCommand(t, "list", "--ledger", ledger, "--status", "unpaid")
	assert.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "add", "--ledger", ledger,
		"--customer", "Coastal Traders", "--amount", "18000", "--terms", "15")
	require.NoError(t, err)
	assert.Contains(t, output, "INV-004")
	assert.Contains(t, output, "Coastal Traders")
	assert.Contains(t, output, "₹18,000")

	stored, err := store.New(ledger).Load()
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestAddCommand_ValidationErrors(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "add", "--ledger", ledger,
		"--customer", "", "--amount", "-50")
	require.Error(t, err)
	assert.EqualError(t, err, "invoice not recorded")
	assert.Contains(t, output, "Customer name is required")
	assert.Contains(t, output, "Amount must be greater than 0")

	stored, err := store.New(ledger).Load()
	require.NoError(t, err)
	assert.Len(t, stored, 3, "a rejected draft must not touch the ledger")
}

func TestPayCommand(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "pay", "INV-002", "--ledger", ledger)
	require.NoError(t, err)
	assert.Contains(t, output, "INV-002")
	assert.Contains(t, output, "Paid 1 day late")

	stored, err := store.New(ledger).Load()
	require.NoError(t, err)
	for _, inv := range stored {
		if inv.ID == "INV-002" {
			assert.True(t, inv.Paid())
		}
	}
}

func TestPayCommand_AlreadyPaid(t *testing.T) {
	ledger := seedLedger(t)
	_, err := runCommand(t, "pay", "INV-001", "--ledger", ledger)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

func TestPayCommand_NotFound(t *testing.T) {
	ledger := seedLedger(t)
	_, err := runCommand(t, "pay", "INV-999", "--ledger", ledger)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveCommand(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "remove", "INV-003", "--ledger", ledger)
	require.NoError(t, err)
	assert.Contains(t, output, "Removed INV-003 (Nilgiri Exports)")

	stored, err := store.New(ledger).Load()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSummaryCommand(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "summary", "--ledger", ledger)
	require.NoError(t, err)
	assert.Contains(t, output, "Outstanding")
	assert.Contains(t, output, "₹42,500")
	assert.Contains(t, output, "₹12,500")
	assert.Contains(t, output, "₹45,000")
}

func TestSummaryCommand_JSON(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "summary", "--ledger", ledger, "--json")
	require.NoError(t, err)

	var sum struct {
		TotalOutstanding string `json:"totalOutstanding"`
		TotalOverdue     string `json:"totalOverdue"`
		AvgPaymentDelay  string `json:"avgPaymentDelay"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &sum), "output should be valid JSON")
	assert.Equal(t, "42500", sum.TotalOutstanding)
	assert.Equal(t, "12500", sum.TotalOverdue)
	assert.Equal(t, "10", sum.AvgPaymentDelay)
}

func TestSeedCommand_RefusesExistingLedger(t *testing.T) {
	ledger := seedLedger(t)
	_, err := runCommand(t, "seed", "--ledger", ledger)
	assert.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	ledger := filepath.Join(t.TempDir(), "invoices.json")
	output, err := runCommand(t, "seed", "--ledger", ledger, "--count", "12")
	require.NoError(t, err)
	assert.Contains(t, output, "Generated 12 sample invoices")

	stored, err := store.New(ledger).Load()
	require.NoError(t, err)
	assert.Len(t, stored, 12)
}

func TestSeedCommand_Force(t *testing.T) {
	ledger := seedLedger(t)
	output, err := runCommand(t, "seed", "--ledger", ledger, "--force", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, output, "Generated 5 sample invoices")

	stored, err := store.New(ledger).Load()
	require.NoError(t, err)
	assert.Len(t, stored, 5)
}

func TestVersionCommand(t *testing.T) {
	output, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "billfold")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCommand(t, "audit")
	assert.Error(t, err)
}
