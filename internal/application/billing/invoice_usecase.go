package billing

import (
	"context"
	"time"

	"github.com/mcproperty/invoicing/internal/application/dto"
	"github.com/mcproperty/invoicing/internal/domain"
	dombilling "github.com/mcproperty/invoicing/internal/domain/billing"
	"github.com/mcproperty/invoicing/internal/domain/entity"
	"github.com/mcproperty/invoicing/internal/domain/repository"
)

// InvoiceUseCase invoice operations over the record store. Submitted
// drafts are replayed through the computation engine so amounts and the
// total are always derived server-side, whatever the client sent.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// List returns the display-ready invoice list: joined with customers,
// filtered by search term and status, newest first. Both collections are
// pulled fresh on every call; there is no local cache to diverge from the
// store.
func (uc *InvoiceUseCase) List(ctx context.Context, search, status string) ([]dto.InvoiceRowResponse, error) {
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := dombilling.DeriveInvoices(invoices, customers, search, status)
	out := make([]dto.InvoiceRowResponse, 0, len(rows))
	for _, r := range rows {
		row := dto.InvoiceRowResponse{
			ID:            r.Invoice.ID,
			InvoiceNumber: r.Invoice.InvoiceNumber,
			ProjectName:   r.Invoice.ProjectName,
			DueDate:       r.Invoice.DueDate,
			Total:         r.Invoice.Total,
			Status:        r.Invoice.Status,
			CreatedAt:     r.Invoice.CreatedAt,
			CustomerID:    r.Invoice.CustomerID,
		}
		if r.Customer != nil {
			row.CustomerName = r.Customer.Name
			row.CustomerPhone = r.Customer.Phone
		}
		out = append(out, row)
	}
	return out, nil
}

// Get returns a single invoice.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInvoiceResponse(*inv)
	return &resp, nil
}

// Create validates the submission, derives amounts and total through the
// computation engine, finalizes the draft (createdAt stamp, number
// synthesis for blank numbers) and persists it.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validateInvoice(in); err != nil {
		return nil, err
	}
	draft := buildDraft(uc.now(), in)
	created, err := uc.invoiceRepo.Create(ctx, draft.Finalize(uc.now()))
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(*created)
	return &resp, nil
}

// Update edits an invoice in place (PUT on the store, not a re-create).
// The existing createdAt, status, and persisted invoice number survive the
// edit; amounts and the total are re-derived from the submitted items.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validateInvoice(in); err != nil {
		return nil, err
	}
	existing, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	draft := buildDraft(uc.now(), in)
	if in.InvoiceNumber == "" {
		draft.SetField(dombilling.FieldInvoiceNumber, existing.InvoiceNumber)
	}
	inv := draft.Invoice()
	inv.ID = existing.ID
	inv.Status = existing.Status
	inv.CreatedAt = existing.CreatedAt

	updated, err := uc.invoiceRepo.Update(ctx, inv)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(*updated)
	return &resp, nil
}

// MarkPaid transitions a pending invoice to paid via a partial update on
// the store. The transition is one-way; marking a paid invoice again is
// an idempotent no-op.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.Status == entity.StatusPaid {
		resp := toInvoiceResponse(*existing)
		return &resp, nil
	}
	patched, err := uc.invoiceRepo.Patch(ctx, id, map[string]any{"status": entity.StatusPaid})
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(*patched)
	return &resp, nil
}

// Delete removes an invoice.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(ctx, id)
}

// validateInvoice applies the thin submit-time checks: a customer
// reference, at least one item, and non-empty item descriptions.
func validateInvoice(in dto.SaveInvoiceRequest) error {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Description == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// buildDraft replays the submission through the computation engine, which
// owns amount and total derivation (including the parse-failure-to-zero
// policy for quantity and rate).
func buildDraft(now time.Time, in dto.SaveInvoiceRequest) *dombilling.Draft {
	draft := dombilling.NewDraft(now)
	draft.SetField(dombilling.FieldCustomerID, in.CustomerID)
	draft.SetField(dombilling.FieldInvoiceNumber, in.InvoiceNumber)
	draft.SetField(dombilling.FieldProjectName, in.ProjectName)
	if in.Date != "" {
		draft.SetField(dombilling.FieldDate, in.Date)
	}
	draft.SetField(dombilling.FieldDueDate, in.DueDate)
	for i, item := range in.Items {
		if i > 0 {
			draft.AddItem()
		}
		draft.SetItemField(i, dombilling.ItemFieldDescription, item.Description)
		draft.SetItemField(i, dombilling.ItemFieldQuantity, item.Quantity.String())
		draft.SetItemField(i, dombilling.ItemFieldRate, item.Rate.String())
	}
	return draft
}

func toInvoiceResponse(inv entity.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		ProjectName:   inv.ProjectName,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		Items:         make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		Total:         inv.Total,
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}
	return resp
}
