package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/mcproperty/invoicing/internal/application/billing"
	"github.com/mcproperty/invoicing/internal/application/dto"
	"github.com/mcproperty/invoicing/internal/domain"
	"github.com/mcproperty/invoicing/internal/domain/entity"
)

func laborInvoice(customerID string) dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		CustomerID:  customerID,
		ProjectName: "Roof Repair",
		Date:        "2024-06-01",
		DueDate:     "2024-07-01",
		Items: []dto.InvoiceItemRequest{
			{Description: "Labor", Quantity: dec("2"), Rate: dec("50")},
		},
	}
}

// End-to-end scenario: create customer, create invoice, expect derived
// amount/total and the pending default.
func TestInvoiceCreate_DerivesAmountsAndDefaults(t *testing.T) {
	ctx := context.Background()
	customers := newFakeCustomerRepo()
	invoices := newFakeInvoiceRepo()
	customerUC := appbilling.NewCustomerUseCase(customers)
	invoiceUC := appbilling.NewInvoiceUseCase(invoices, customers)

	customer, err := customerUC.Create(ctx, dto.SaveCustomerRequest{
		Name: "Jane Doe", Email: "jane@x.com", Address: "1 Main St",
	})
	require.NoError(t, err)
	require.Equal(t, "c1", customer.ID)

	inv, err := invoiceUC.Create(ctx, laborInvoice(customer.ID))
	require.NoError(t, err)

	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].Amount.Equal(decimal.NewFromInt(100)), "amount must be 2*50")
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, entity.StatusPending, inv.Status)
	assert.NotEmpty(t, inv.CreatedAt)
	assert.Regexp(t, `^INV-\d{4}-\d{1,3}$`, inv.InvoiceNumber, "blank number must be synthesized and persisted")
}

func TestInvoiceCreate_IgnoresClientSentTotals(t *testing.T) {
	ctx := context.Background()
	invoices := newFakeInvoiceRepo()
	uc := appbilling.NewInvoiceUseCase(invoices, newFakeCustomerRepo())

	in := laborInvoice("c1")
	in.Items = append(in.Items, dto.InvoiceItemRequest{
		Description: "Materials", Quantity: dec("3"), Rate: dec("19.99"),
	})
	inv, err := uc.Create(ctx, in)
	require.NoError(t, err)

	assert.True(t, inv.Items[1].Amount.Equal(dec("59.97")))
	assert.True(t, inv.Total.Equal(dec("159.97")))
}

func TestInvoiceCreate_Validation(t *testing.T) {
	ctx := context.Background()
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), newFakeCustomerRepo())

	cases := []struct {
		name string
		in   dto.SaveInvoiceRequest
	}{
		{"missing customer", dto.SaveInvoiceRequest{
			Items: []dto.InvoiceItemRequest{{Description: "Labor"}},
		}},
		{"no items", dto.SaveInvoiceRequest{CustomerID: "c1"}},
		{"blank description", dto.SaveInvoiceRequest{
			CustomerID: "c1",
			Items:      []dto.InvoiceItemRequest{{Description: ""}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInvoiceUpdate_EditsInPlacePreservingIdentity(t *testing.T) {
	ctx := context.Background()
	invoices := newFakeInvoiceRepo()
	uc := appbilling.NewInvoiceUseCase(invoices, newFakeCustomerRepo())

	created, err := uc.Create(ctx, laborInvoice("c1"))
	require.NoError(t, err)

	edit := laborInvoice("c1")
	edit.Items[0].Quantity = dec("4")
	updated, err := uc.Update(ctx, created.ID, edit)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "edit must update in place, not create a new record")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "createdAt survives edits")
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber, "persisted number is stable across edits")
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(200)))
	assert.Len(t, invoices.order, 1, "the store must still hold exactly one record")
}

func TestInvoiceUpdate_UnknownID(t *testing.T) {
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), newFakeCustomerRepo())
	_, err := uc.Update(context.Background(), "nope", laborInvoice("c1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceMarkPaid_TransitionPreservesOtherFields(t *testing.T) {
	ctx := context.Background()
	invoices := newFakeInvoiceRepo()
	uc := appbilling.NewInvoiceUseCase(invoices, newFakeCustomerRepo())

	created, err := uc.Create(ctx, laborInvoice("c1"))
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, created.Status)

	paid, err := uc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, paid.Status)

	// Subsequent read shows the transition and nothing else changed.
	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got.Status)
	assert.Equal(t, created.ProjectName, got.ProjectName)
	assert.True(t, got.Total.Equal(created.Total))
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestInvoiceMarkPaid_AlreadyPaidIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), newFakeCustomerRepo())

	created, err := uc.Create(ctx, laborInvoice("c1"))
	require.NoError(t, err)
	_, err = uc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)

	again, err := uc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, again.Status)
}

func TestInvoiceList_JoinsFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	customers := newFakeCustomerRepo()
	invoices := newFakeInvoiceRepo()
	customerUC := appbilling.NewCustomerUseCase(customers)
	uc := appbilling.NewInvoiceUseCase(invoices, customers)

	jane, err := customerUC.Create(ctx, dto.SaveCustomerRequest{Name: "Jane Doe", Phone: "555-0100"})
	require.NoError(t, err)

	first, err := uc.Create(ctx, laborInvoice(jane.ID))
	require.NoError(t, err)
	fence := laborInvoice(jane.ID)
	fence.ProjectName = "Fence"
	second, err := uc.Create(ctx, fence)
	require.NoError(t, err)

	rows, err := uc.List(ctx, "", "all")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Doe", rows[0].CustomerName)
	assert.Equal(t, "555-0100", rows[0].CustomerPhone)

	rows, err = uc.List(ctx, "roof", "all")
	require.NoError(t, err)
	// "roof" matches the Roof Repair project; Jane's name matches neither.
	foundFirst, foundSecond := false, false
	for _, r := range rows {
		foundFirst = foundFirst || r.ID == first.ID
		foundSecond = foundSecond || r.ID == second.ID
	}
	assert.True(t, foundFirst)
	assert.False(t, foundSecond)

	_, err = uc.MarkPaid(ctx, second.ID)
	require.NoError(t, err)
	rows, err = uc.List(ctx, "", entity.StatusPaid)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, second.ID, rows[0].ID)
}

func TestInvoiceList_StoreFailureSurfaces(t *testing.T) {
	invoices := newFakeInvoiceRepo()
	invoices.fail = domain.ErrStoreUnavailable
	uc := appbilling.NewInvoiceUseCase(invoices, newFakeCustomerRepo())

	_, err := uc.List(context.Background(), "", "all")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestInvoiceDelete(t *testing.T) {
	ctx := context.Background()
	invoices := newFakeInvoiceRepo()
	uc := appbilling.NewInvoiceUseCase(invoices, newFakeCustomerRepo())

	created, err := uc.Create(ctx, laborInvoice("c1"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}
