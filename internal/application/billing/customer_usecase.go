package billing

import (
	"context"

	"github.com/mcproperty/invoicing/internal/application/dto"
	"github.com/mcproperty/invoicing/internal/domain"
	dombilling "github.com/mcproperty/invoicing/internal/domain/billing"
	"github.com/mcproperty/invoicing/internal/domain/entity"
	"github.com/mcproperty/invoicing/internal/domain/repository"
)

// CustomerUseCase customer operations over the record store.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List returns customers filtered by the search term (name or email,
// case-insensitive). Store insertion order is preserved; no sort applies.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := dombilling.FilterCustomers(customers, search)
	out := make([]dto.CustomerResponse, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Get returns a single customer.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(*c)
	return &resp, nil
}

// Create creates a customer. Name is the only required field.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Create(ctx, entity.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		Phone:   in.Phone,
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(*created)
	return &resp, nil
}

// Update fully replaces a customer record.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := uc.repo.Update(ctx, entity.Customer{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		Phone:   in.Phone,
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(*updated)
	return &resp, nil
}

// Delete removes a customer. Invoices referencing it are left as they are;
// the reference is a lookup, not ownership, and list views render the
// missing customer as blank.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
		Phone:   c.Phone,
	}
}
