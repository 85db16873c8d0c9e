package dto

import "github.com/shopspring/decimal"

// SaveCustomerRequest body for POST /api/customers and PUT /api/customers/:id.
type SaveCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SaveInvoiceRequest body for POST /api/invoices and PUT /api/invoices/:id.
// Amounts and the total are derived server-side; any client-sent values
// for them are ignored.
type SaveInvoiceRequest struct {
	CustomerID    string               `json:"customerId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	ProjectName   string               `json:"projectName"`
	Date          string               `json:"date"`
	DueDate       string               `json:"dueDate"`
	Items         []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one line item as submitted.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// InvoiceResponse full invoice for GET /api/invoices/:id and mutations.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CustomerID    string                `json:"customerId"`
	InvoiceNumber string                `json:"invoiceNumber"`
	ProjectName   string                `json:"projectName"`
	Date          string                `json:"date"`
	DueDate       string                `json:"dueDate"`
	Items         []InvoiceItemResponse `json:"items"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	CreatedAt     string                `json:"createdAt,omitempty"`
}

// InvoiceItemResponse one line item with its derived amount.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceRowResponse one row of the invoice list: the invoice joined with
// the customer fields the list displays. Customer fields are blank when
// the customerId reference dangles.
type InvoiceRowResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ProjectName   string          `json:"projectName"`
	DueDate       string          `json:"dueDate"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
}
