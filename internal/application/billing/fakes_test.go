package billing_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mcproperty/invoicing/internal/domain/entity"
	"github.com/mcproperty/invoicing/internal/domain/repository"
)

// In-memory fakes for the record store ports. They mimic the store's
// contract: opaque assigned ids, nil-on-not-found reads, full replace on
// update, shallow merge on patch.

type fakeCustomerRepo struct {
	seq   int
	order []string
	docs  map[string]entity.Customer
	fail  error // when set, every call fails with it
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{docs: map[string]entity.Customer{}}
}

func (r *fakeCustomerRepo) List(context.Context) ([]entity.Customer, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	c, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomerRepo) Create(_ context.Context, c entity.Customer) (*entity.Customer, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.seq++
	c.ID = fmt.Sprintf("c%d", r.seq)
	r.docs[c.ID] = c
	r.order = append(r.order, c.ID)
	return &c, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c entity.Customer) (*entity.Customer, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.docs[c.ID] = c
	return &c, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if r.fail != nil {
		return r.fail
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	seq   int
	order []string
	docs  map[string]entity.Invoice
	fail  error
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{docs: map[string]entity.Invoice{}}
}

func (r *fakeInvoiceRepo) List(context.Context) ([]entity.Invoice, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]entity.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	inv, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.seq++
	inv.ID = fmt.Sprintf("i%d", r.seq)
	r.docs[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	return &inv, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.docs[inv.ID] = inv
	return &inv, nil
}

func (r *fakeInvoiceRepo) Patch(_ context.Context, id string, fields map[string]any) (*entity.Invoice, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	inv := r.docs[id]
	if status, ok := fields["status"].(string); ok {
		inv.Status = status
	}
	r.docs[id] = inv
	return &inv, nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if r.fail != nil {
		return r.fail
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
