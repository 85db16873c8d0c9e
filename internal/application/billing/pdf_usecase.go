package billing

import (
	"context"
	"fmt"

	"github.com/mcproperty/invoicing/internal/domain"
	"github.com/mcproperty/invoicing/internal/domain/repository"
)

// PDFUseCase produces the printable/downloadable document for an invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	business     BusinessInfo
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	business BusinessInfo,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
		business:     business,
	}
}

// DownloadInvoicePDF loads the invoice and its customer and renders the
// document. A dangling customer reference renders with blank customer
// fields rather than failing. The filename is invoice-<number>.pdf, using
// the persisted invoice number.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound if the invoice does not exist.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer, uc.business)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber), nil
}
