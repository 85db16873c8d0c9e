package entity

import "github.com/shopspring/decimal"

// Invoice statuses. The only exposed transition is pending -> paid.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

func init() {
	// Record store documents carry plain JSON numbers, not quoted decimals.
	decimal.MarshalJSONWithoutQuotes = true
}

// Invoice is an invoice header plus its line items. CustomerID is a lookup
// reference, not ownership: deleting the customer leaves it dangling.
// Total is derived and always equals the sum of the items' amounts.
type Invoice struct {
	ID            string          `json:"id,omitempty"`
	CustomerID    string          `json:"customerId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ProjectName   string          `json:"projectName"`
	Date          string          `json:"date"`    // ISO calendar date (2006-01-02)
	DueDate       string          `json:"dueDate"` // ISO calendar date (2006-01-02)
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt,omitempty"` // RFC 3339, set once at creation
}

// LineItem is one billable row. Amount is derived (quantity * rate) and
// never directly editable.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}
