// Package pdf implements the printable invoice document with Maroto v2,
// reproducing the business's letterhead invoice.
//
// Letter page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  INVOICE  +  business letterhead  │  number / date / due    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: customer name + address                           │
//	│  PROJECT DETAILS: project name                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Quantity | Rate | Amount              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  Thank you for your business!                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/mcproperty/invoicing/internal/application/billing"
	"github.com/mcproperty/invoicing/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoInvoiceRenderer implements billing.InvoicePDFGenerator using
// Maroto v2.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer builds the renderer.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer { return &MarotoInvoiceRenderer{} }

var _ appbilling.InvoicePDFGenerator = (*MarotoInvoiceRenderer)(nil)

// GenerateInvoicePDF renders the document and returns its bytes. customer
// may be nil (dangling customerId); its fields render blank.
func (g *MarotoInvoiceRenderer) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	customer *entity.Customer,
	business appbilling.BusinessInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(customer))
	m.AddRows(projectRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(inv))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: INVOICE + letterhead (left), number/date/due date (right).
func headerRow(inv *entity.Invoice, business appbilling.BusinessInfo) core.Row {
	return row.New(30).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
			text.New("Email: "+business.Email, props.Text{Size: 8, Top: 16, Color: colorGray}),
			text.New("Address: "+business.Address, props.Text{Size: 8, Top: 20, Color: colorGray}),
			text.New("Phone: "+business.Phone, props.Text{Size: 8, Top: 24, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Invoice Number: "+inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
			text.New("Date: "+formatDate(inv.Date), props.Text{
				Size: 9, Align: align.Right, Top: 15, Color: colorGray,
			}),
			text.New("Due Date: "+formatDate(inv.DueDate), props.Text{
				Size: 9, Align: align.Right, Top: 20, Color: colorGray,
			}),
		),
	)
}

// billToRow: customer name and address; blank when the reference dangles.
func billToRow(customer *entity.Customer) core.Row {
	name, address := "", ""
	if customer != nil {
		name, address = customer.Name, customer.Address
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Bill To:", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
			text.New(name, props.Text{Size: 9, Top: 7}),
			text.New(address, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// projectRow: project details block.
func projectRow(inv *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Project Details:", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
			text.New("Project Name: "+inv.ProjectName, props.Text{Size: 9, Top: 7}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Quantity", 2, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per line item, in insertion order.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.Rate.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: grand total aligned with the amount column.
func totalRow(inv *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("Total:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New("$"+inv.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// formatDate renders an ISO calendar date as "January 2, 2006". Malformed
// or empty input renders as-is.
func formatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}
