package billing

import (
	"sort"
	"strings"
	"time"

	"github.com/mcproperty/invoicing/internal/domain/entity"
)

// Status filter values for invoice derivation.
const (
	StatusFilterAll     = "all"
	StatusFilterPending = entity.StatusPending
	StatusFilterPaid    = entity.StatusPaid
)

// InvoiceRow is one display row of the invoice list: the invoice joined
// with its customer. Customer is nil when the customerId reference
// dangles; callers render blank customer fields in that case.
type InvoiceRow struct {
	Invoice  entity.Invoice
	Customer *entity.Customer
}

// DeriveInvoices produces the display-ready invoice list: sorted by
// recency, joined with customers, and filtered by search term and status.
// It is a pure function over its inputs; the input slices are not mutated
// and calling it twice yields identical output.
//
// Sort order is descending by createdAt. A missing or unparseable
// createdAt sorts as oldest; when both compare equal the tie breaks on
// descending id, which is also the order for legacy records that never
// had a timestamp.
//
// An invoice is kept iff the search term is empty or matches the customer
// name or project name (case-insensitive substring), and the status
// filter is "all" or equals the invoice status.
func DeriveInvoices(invoices []entity.Invoice, customers []entity.Customer, search, status string) []InvoiceRow {
	sorted := append([]entity.Invoice(nil), invoices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iOK := parseCreatedAt(sorted[i].CreatedAt)
		tj, jOK := parseCreatedAt(sorted[j].CreatedAt)
		switch {
		case iOK && jOK && !ti.Equal(tj):
			return ti.After(tj)
		case iOK != jOK:
			return iOK // timestamped records sort ahead of legacy ones
		default:
			return sorted[i].ID > sorted[j].ID
		}
	})

	byID := make(map[string]*entity.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	needle := strings.ToLower(search)
	rows := make([]InvoiceRow, 0, len(sorted))
	for _, inv := range sorted {
		customer := byID[inv.CustomerID]
		if needle != "" {
			customerName := ""
			if customer != nil {
				customerName = customer.Name
			}
			if !strings.Contains(strings.ToLower(customerName), needle) &&
				!strings.Contains(strings.ToLower(inv.ProjectName), needle) {
				continue
			}
		}
		if status != "" && status != StatusFilterAll && inv.Status != status {
			continue
		}
		rows = append(rows, InvoiceRow{Invoice: inv, Customer: customer})
	}
	return rows
}

// FilterCustomers keeps the customers whose name or email contains the
// search term, case-insensitively. Input order is preserved and an empty
// term keeps everything.
func FilterCustomers(customers []entity.Customer, search string) []entity.Customer {
	needle := strings.ToLower(search)
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			out = append(out, c)
		}
	}
	return out
}

func parseCreatedAt(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
