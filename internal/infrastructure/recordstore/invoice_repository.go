package recordstore

import (
	"context"
	"errors"
	"net/http"

	"github.com/mcproperty/invoicing/internal/domain"
	"github.com/mcproperty/invoicing/internal/domain/entity"
	"github.com/mcproperty/invoicing/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository against /invoices.
type InvoiceRepo struct {
	client *Client
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(client *Client) *InvoiceRepo {
	return &InvoiceRepo{client: client}
}

// List reads the whole collection.
func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	var out []entity.Invoice
	if err := r.client.do(ctx, http.MethodGet, "/invoices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID reads one record; (nil, nil) when it does not exist.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var out entity.Invoice
	err := r.client.do(ctx, http.MethodGet, "/invoices/"+id, nil, &out)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new record; the store assigns the id.
func (r *InvoiceRepo) Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	var out entity.Invoice
	if err := r.client.do(ctx, http.MethodPost, "/invoices", inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update fully replaces the record.
func (r *InvoiceRepo) Update(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	var out entity.Invoice
	if err := r.client.do(ctx, http.MethodPut, "/invoices/"+inv.ID, inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch partially updates the record; used for the status transition.
func (r *InvoiceRepo) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Invoice, error) {
	var out entity.Invoice
	if err := r.client.do(ctx, http.MethodPatch, "/invoices/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, "/invoices/"+id, nil, nil)
}
