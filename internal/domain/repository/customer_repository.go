package repository

import (
	"context"

	"github.com/mcproperty/invoicing/internal/domain/entity"
)

// CustomerRepository is the port onto the record store's customers
// collection. GetByID returns (nil, nil) when the record does not exist.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// Create persists a new customer; the store assigns the id. The stored
	// record is returned.
	Create(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	// Update fully replaces the record identified by c.ID.
	Update(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
