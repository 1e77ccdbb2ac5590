// Package pdf renders printable estimates and invoices.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name        │  Document number + dates     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: client name + contact                             │
//	│  PROJECT: name + site address                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Unit Price | Amount             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Tax / TOTAL                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTES                                                      │
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
	"github.com/shopspring/decimal"

	appbilling "github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 26, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appbilling.EstimatePDFGenerator = (*MarotoPDFGenerator)(nil)
var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements both document generators with Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

// GenerateEstimatePDF renders an estimate and returns the PDF bytes.
func (g *MarotoPDFGenerator) GenerateEstimatePDF(
	_ context.Context,
	est *entity.Estimate,
	client *entity.Client,
	project *entity.Project,
) ([]byte, error) {
	m := g.newDocument("Estimate " + est.EstimateNumber)

	secondDate := ""
	if est.ExpiryDate != nil {
		secondDate = "Valid until: " + est.ExpiryDate.Format("01/02/2006")
	}
	m.AddRows(g.headerRow("ESTIMATE", est.EstimateNumber, est.IssueDate, secondDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRows(client, project)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(est.LineItems)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(est.Subtotal, est.TaxRate, est.TaxAmount, est.TotalAmount))

	if est.Notes != "" {
		m.AddRows(notesRows(est.Notes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateInvoicePDF renders an invoice and returns the PDF bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	client *entity.Client,
	project *entity.Project,
) ([]byte, error) {
	m := g.newDocument("Invoice " + inv.InvoiceNumber)

	secondDate := ""
	if inv.DueDate != nil {
		secondDate = "Due: " + inv.DueDate.Format("01/02/2006")
	}
	m.AddRows(g.headerRow("INVOICE", inv.InvoiceNumber, inv.IssueDate, secondDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRows(client, project)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(inv.LineItems)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.TotalAmount))

	if inv.Notes != "" {
		m.AddRows(notesRows(inv.Notes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.companyName, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: company name left, document kind, number and dates right.
func (g *MarotoPDFGenerator) headerRow(kind, number string, issueDate time.Time, secondDate string) core.Row {
	right := []core.Component{
		text.New(kind, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
		text.New(number, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
		}),
		text.New("Date: "+issueDate.Format("01/02/2006"), props.Text{
			Size: 8, Align: align.Right, Top: 14, Color: colorGray,
		}),
	}
	if secondDate != "" {
		right = append(right, text.New(secondDate, props.Text{
			Size: 8, Align: align.Right, Top: 18, Color: colorGray,
		}))
	}
	return row.New(22).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Heating & Cooling Contractors", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(right...),
	)
}

// partyRows: client block and project block.
func partyRows(client *entity.Client, project *entity.Project) []core.Row {
	clientName, contact := "-", "-"
	if client != nil {
		clientName = client.ClientName
		contact = fmt.Sprintf("%s   |   %s   |   %s",
			nonEmpty(client.ContactName, "-"),
			nonEmpty(client.Phone, "-"),
			nonEmpty(client.Email, "-"),
		)
	}
	rows := []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(clientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		)),
	}
	if project != nil {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("PROJECT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s",
				project.ProjectName,
				nonEmpty(project.SiteAddress, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

func tableDetailRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Amount().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(subtotal, taxRate, taxAmount, total decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: 14,
	})
	grandValue := text.New("$"+total.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: 14,
	})

	taxLabel := "Tax:"
	if !taxRate.IsZero() {
		taxLabel = fmt.Sprintf("Tax (%s%%):", taxRate.Mul(decimal.NewFromInt(100)).String())
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			text.New(taxLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 7,
			}),
			grandLabel,
		),
		col.New(3).Add(
			value("$"+subtotal.StringFixed(2)),
			text.New("$"+taxAmount.StringFixed(2), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 7,
			}),
			grandValue,
		),
	)
}

func notesRows(notes string) []core.Row {
	return []core.Row{
		row.New(3),
		row.New(6).Add(col.New(12).Add(
			text.New("NOTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New(notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
