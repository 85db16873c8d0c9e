package repository

import (
	"context"

	"github.com/mcproperty/invoicing/internal/domain/entity"
)

// InvoiceRepository is the port onto the record store's invoices
// collection. GetByID returns (nil, nil) when the record does not exist.
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Create persists a new invoice; the store assigns the id.
	Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error)
	// Update fully replaces the record identified by inv.ID.
	Update(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error)
	// Patch partially updates the record (used for the status transition).
	Patch(ctx context.Context, id string, fields map[string]any) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
}
