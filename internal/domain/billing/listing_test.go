package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcproperty/invoicing/internal/domain/billing"
	"github.com/mcproperty/invoicing/internal/domain/entity"
)

func listingFixture() ([]entity.Invoice, []entity.Customer) {
	invoices := []entity.Invoice{
		{ID: "i1", CustomerID: "c1", ProjectName: "Roof Repair", Status: entity.StatusPending,
			Total: decimal.NewFromInt(100), CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "i2", CustomerID: "c2", ProjectName: "Fence", Status: entity.StatusPaid,
			Total: decimal.NewFromInt(250), CreatedAt: "2024-06-01T00:00:00Z"},
		{ID: "i3", CustomerID: "missing", ProjectName: "Deck", Status: entity.StatusPending,
			Total: decimal.NewFromInt(75), CreatedAt: "2024-03-01T00:00:00Z"},
	}
	customers := []entity.Customer{
		{ID: "c1", Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0100"},
		{ID: "c2", Name: "Bob Roofer", Email: "bob@y.com"},
	}
	return invoices, customers
}

func rowIDs(rows []billing.InvoiceRow) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Invoice.ID)
	}
	return ids
}

func TestDeriveInvoices_SortsNewestFirst(t *testing.T) {
	invoices, customers := listingFixture()
	rows := billing.DeriveInvoices(invoices, customers, "", billing.StatusFilterAll)
	assert.Equal(t, []string{"i2", "i3", "i1"}, rowIDs(rows))
}

func TestDeriveInvoices_MissingCreatedAtSortsOldest(t *testing.T) {
	invoices := []entity.Invoice{
		{ID: "a", CreatedAt: ""},
		{ID: "b", CreatedAt: "2024-01-01T00:00:00Z"},
	}
	rows := billing.DeriveInvoices(invoices, nil, "", billing.StatusFilterAll)
	assert.Equal(t, []string{"b", "a"}, rowIDs(rows))
}

func TestDeriveInvoices_BothMissingCreatedAtFallBackToID(t *testing.T) {
	invoices := []entity.Invoice{{ID: "a"}, {ID: "c"}, {ID: "b"}}
	rows := billing.DeriveInvoices(invoices, nil, "", billing.StatusFilterAll)
	assert.Equal(t, []string{"c", "b", "a"}, rowIDs(rows))
}

func TestDeriveInvoices_SearchMatchesProjectCaseInsensitive(t *testing.T) {
	invoices, customers := listingFixture()
	rows := billing.DeriveInvoices(invoices, customers, "ROOF", billing.StatusFilterAll)
	// "ROOF" matches project "Roof Repair" and customer "Bob Roofer".
	assert.Equal(t, []string{"i2", "i1"}, rowIDs(rows))

	rows = billing.DeriveInvoices(invoices, customers, "roof repair", billing.StatusFilterAll)
	assert.Equal(t, []string{"i1"}, rowIDs(rows))
}

func TestDeriveInvoices_SearchMatchesCustomerName(t *testing.T) {
	invoices, customers := listingFixture()
	rows := billing.DeriveInvoices(invoices, customers, "jane", billing.StatusFilterAll)
	require.Len(t, rows, 1)
	assert.Equal(t, "i1", rows[0].Invoice.ID)
	require.NotNil(t, rows[0].Customer)
	assert.Equal(t, "Jane Doe", rows[0].Customer.Name)
}

func TestDeriveInvoices_StatusFilterExcludesOthers(t *testing.T) {
	invoices, customers := listingFixture()

	rows := billing.DeriveInvoices(invoices, customers, "", billing.StatusFilterPaid)
	assert.Equal(t, []string{"i2"}, rowIDs(rows))

	rows = billing.DeriveInvoices(invoices, customers, "", billing.StatusFilterPending)
	assert.Equal(t, []string{"i3", "i1"}, rowIDs(rows))
}

func TestDeriveInvoices_ToleratesDanglingCustomer(t *testing.T) {
	invoices, customers := listingFixture()
	rows := billing.DeriveInvoices(invoices, customers, "", billing.StatusFilterAll)
	for _, r := range rows {
		if r.Invoice.ID == "i3" {
			assert.Nil(t, r.Customer, "dangling customerId must yield a nil customer, not an error")
			return
		}
	}
	t.Fatal("invoice i3 missing from derivation")
}

func TestDeriveInvoices_Idempotent(t *testing.T) {
	invoices, customers := listingFixture()
	first := billing.DeriveInvoices(invoices, customers, "e", billing.StatusFilterPending)
	second := billing.DeriveInvoices(invoices, customers, "e", billing.StatusFilterPending)
	assert.Equal(t, first, second)
}

func TestDeriveInvoices_DoesNotMutateInput(t *testing.T) {
	invoices, customers := listingFixture()
	billing.DeriveInvoices(invoices, customers, "", billing.StatusFilterAll)
	assert.Equal(t, "i1", invoices[0].ID, "input slice order must be preserved")
}

func TestFilterCustomers_ByNameOrEmail(t *testing.T) {
	_, customers := listingFixture()

	out := billing.FilterCustomers(customers, "JANE")
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ID)

	out = billing.FilterCustomers(customers, "y.com")
	require.Len(t, out, 1)
	assert.Equal(t, "c2", out[0].ID)
}

func TestFilterCustomers_EmptyTermPreservesOrder(t *testing.T) {
	_, customers := listingFixture()
	out := billing.FilterCustomers(customers, "")
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ID)
	assert.Equal(t, "c2", out[1].ID)
}
