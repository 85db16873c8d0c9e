package recordstore

import (
	"context"
	"errors"
	"net/http"

	"github.com/mcproperty/invoicing/internal/domain"
	"github.com/mcproperty/invoicing/internal/domain/entity"
	"github.com/mcproperty/invoicing/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository against /customers.
type CustomerRepo struct {
	client *Client
}

// NewCustomerRepository builds the adapter.
func NewCustomerRepository(client *Client) *CustomerRepo {
	return &CustomerRepo{client: client}
}

// List reads the whole collection.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := r.client.do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID reads one record; (nil, nil) when it does not exist.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var out entity.Customer
	err := r.client.do(ctx, http.MethodGet, "/customers/"+id, nil, &out)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new record; the store assigns the id.
func (r *CustomerRepo) Create(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	var out entity.Customer
	if err := r.client.do(ctx, http.MethodPost, "/customers", c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update fully replaces the record.
func (r *CustomerRepo) Update(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	var out entity.Customer
	if err := r.client.do(ctx, http.MethodPut, "/customers/"+c.ID, c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}
