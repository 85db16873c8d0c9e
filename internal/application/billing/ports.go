package billing

import (
	"context"

	"github.com/mcproperty/invoicing/internal/domain/entity"
)

// BusinessInfo is the letterhead printed on exported invoices.
type BusinessInfo struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

// InvoicePDFGenerator is the outbound port for document export. The
// concrete implementation owns all rendering and layout; the use case only
// supplies the finalized invoice data. customer may be nil when the
// invoice's customerId reference dangles.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, customer *entity.Customer, business BusinessInfo) ([]byte, error)
}
