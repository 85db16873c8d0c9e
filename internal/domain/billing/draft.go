// Package billing holds the pure invoicing core: the draft computation
// engine, the list derivation pipeline and invoice number synthesis. It has
// no transport or storage dependencies and every operation is synchronous;
// callers invoke an explicit recompute path instead of relying on ambient
// reactivity.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mcproperty/invoicing/internal/domain/entity"
)

// Header and item field names accepted by SetField / SetItemField.
const (
	FieldCustomerID    = "customerId"
	FieldInvoiceNumber = "invoiceNumber"
	FieldProjectName   = "projectName"
	FieldDate          = "date"
	FieldDueDate       = "dueDate"

	ItemFieldDescription = "description"
	ItemFieldQuantity    = "quantity"
	ItemFieldRate        = "rate"
)

// Draft is a mutable invoice being edited. Its invariants hold after every
// mutation: each item's amount equals quantity * rate, and the total equals
// the sum of all amounts. A draft always has at least one line item.
type Draft struct {
	inv entity.Invoice
}

// NewDraft returns an empty draft: today's date, one blank line item,
// status pending, total zero.
func NewDraft(now time.Time) *Draft {
	return &Draft{inv: entity.Invoice{
		Date:   now.UTC().Format("2006-01-02"),
		Items:  []entity.LineItem{{}},
		Status: entity.StatusPending,
	}}
}

// DraftOf wraps an existing invoice for editing. An invoice without items
// gets one blank line so the at-least-one-item invariant holds; the total
// is recomputed in case the source was inconsistent.
func DraftOf(inv entity.Invoice) *Draft {
	if len(inv.Items) == 0 {
		inv.Items = []entity.LineItem{{}}
	}
	d := &Draft{inv: inv}
	for i := range d.inv.Items {
		it := &d.inv.Items[i]
		it.Amount = it.Quantity.Mul(it.Rate)
	}
	d.recomputeTotal()
	return d
}

// Invoice returns a copy of the draft's current state.
func (d *Draft) Invoice() entity.Invoice {
	out := d.inv
	out.Items = append([]entity.LineItem(nil), d.inv.Items...)
	return out
}

// SetField sets a single header attribute. Unknown names are ignored;
// header edits never trigger recomputation.
func (d *Draft) SetField(name, value string) {
	switch name {
	case FieldCustomerID:
		d.inv.CustomerID = value
	case FieldInvoiceNumber:
		d.inv.InvoiceNumber = value
	case FieldProjectName:
		d.inv.ProjectName = value
	case FieldDate:
		d.inv.Date = value
	case FieldDueDate:
		d.inv.DueDate = value
	}
}

// SetItemField edits one field of the item at index. Quantity and rate are
// parsed as numbers, with parse failures degrading to zero rather than
// erroring; the item's amount and the invoice total are recomputed after
// every edit. index must be a valid position in the item list.
func (d *Draft) SetItemField(index int, field, value string) {
	item := &d.inv.Items[index]
	switch field {
	case ItemFieldDescription:
		item.Description = value
	case ItemFieldQuantity:
		item.Quantity = parseAmount(value)
		item.Amount = item.Quantity.Mul(item.Rate)
	case ItemFieldRate:
		item.Rate = parseAmount(value)
		item.Amount = item.Quantity.Mul(item.Rate)
	}
	d.recomputeTotal()
}

// AddItem appends a blank line item. The total is unchanged (the new
// amount is zero).
func (d *Draft) AddItem() {
	d.inv.Items = append(d.inv.Items, entity.LineItem{})
}

// RemoveItem deletes the item at index and recomputes the total. Removing
// the last remaining item is a no-op: an invoice always keeps at least one
// line.
func (d *Draft) RemoveItem(index int) {
	if len(d.inv.Items) == 1 {
		return
	}
	d.inv.Items = append(d.inv.Items[:index], d.inv.Items[index+1:]...)
	d.recomputeTotal()
}

// Finalize stamps the creation timestamp and returns the invoice to be
// persisted. A blank invoice number is synthesized here, once, so the
// stored number is stable across later views. The total is already
// consistent by invariant and is not touched.
func (d *Draft) Finalize(now time.Time) entity.Invoice {
	out := d.Invoice()
	out.CreatedAt = now.UTC().Format(time.RFC3339)
	if out.InvoiceNumber == "" {
		out.InvoiceNumber = SynthesizeNumber(now)
	}
	if out.Status == "" {
		out.Status = entity.StatusPending
	}
	return out
}

func (d *Draft) recomputeTotal() {
	total := decimal.Zero
	for _, it := range d.inv.Items {
		total = total.Add(it.Amount)
	}
	d.inv.Total = total
}

// parseAmount converts user input to a number, degrading to zero on
// malformed input instead of propagating an error. Quantities and rates
// are non-negative, so negative input degrades the same way.
func parseAmount(s string) decimal.Decimal {
	n, err := decimal.NewFromString(s)
	if err != nil || n.IsNegative() {
		return decimal.Zero
	}
	return n
}
