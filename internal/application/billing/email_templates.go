package billing

import (
	"fmt"
	"html"
	"strings"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

// emailShell wraps body HTML in the company-branded frame used by every
// outbound email.
func emailShell(companyName, bodyHTML string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body style="margin:0;padding:0;background:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#222;">`)
	b.WriteString(`<div style="max-width:600px;margin:0 auto;padding:24px;">`)
	fmt.Fprintf(&b, `<div style="background:#1a3c6e;color:#fff;padding:16px 24px;border-radius:6px 6px 0 0;font-size:20px;font-weight:bold;">%s</div>`, html.EscapeString(companyName))
	b.WriteString(`<div style="background:#fff;padding:24px;border-radius:0 0 6px 6px;">`)
	b.WriteString(bodyHTML)
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div style="padding:16px;text-align:center;color:#888;font-size:12px;">%s · Heating · Cooling · Ventilation</div>`, html.EscapeString(companyName))
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func lineItemRowsHTML(items []entity.LineItem) string {
	var b strings.Builder
	b.WriteString(`<table style="width:100%;border-collapse:collapse;margin:16px 0;">`)
	b.WriteString(`<tr style="background:#f0f2f5;"><th style="text-align:left;padding:8px;">Description</th><th style="text-align:right;padding:8px;">Qty</th><th style="text-align:right;padding:8px;">Unit</th><th style="text-align:right;padding:8px;">Amount</th></tr>`)
	for _, it := range items {
		fmt.Fprintf(&b, `<tr><td style="padding:8px;border-top:1px solid #eee;">%s</td><td style="text-align:right;padding:8px;border-top:1px solid #eee;">%s</td><td style="text-align:right;padding:8px;border-top:1px solid #eee;">$%s</td><td style="text-align:right;padding:8px;border-top:1px solid #eee;">$%s</td></tr>`,
			html.EscapeString(it.Description), it.Quantity.String(), it.UnitPrice.StringFixed(2), it.Amount().StringFixed(2))
	}
	b.WriteString(`</table>`)
	return b.String()
}

// estimateEmailHTML renders the estimate email with approve and decline
// buttons pointing at the signed public links.
func estimateEmailHTML(companyName, contactName string, est *entity.Estimate, message, approveURL, declineURL string) string {
	var b strings.Builder
	greeting := "Hello"
	if contactName != "" {
		greeting = "Hello " + html.EscapeString(contactName)
	}
	fmt.Fprintf(&b, `<p>%s,</p>`, greeting)
	fmt.Fprintf(&b, `<p>Please review estimate <strong>%s</strong>.</p>`, html.EscapeString(est.EstimateNumber))
	if message != "" {
		fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(message))
	}
	b.WriteString(lineItemRowsHTML(est.LineItems))
	fmt.Fprintf(&b, `<p style="text-align:right;">Subtotal: $%s<br>Tax: $%s<br><strong>Total: $%s</strong></p>`,
		est.Subtotal.StringFixed(2), est.TaxAmount.StringFixed(2), est.TotalAmount.StringFixed(2))
	fmt.Fprintf(&b, `<p style="text-align:center;margin:24px 0;">`+
		`<a href="%s" style="background:#2e7d32;color:#fff;padding:12px 28px;border-radius:4px;text-decoration:none;margin-right:12px;">Approve</a>`+
		`<a href="%s" style="background:#c62828;color:#fff;padding:12px 28px;border-radius:4px;text-decoration:none;">Decline</a></p>`,
		approveURL, declineURL)
	b.WriteString(`<p>Questions? Just reply to this email.</p>`)
	return emailShell(companyName, b.String())
}

// invoiceEmailHTML renders the invoice email with a link to the public
// invoice view.
func invoiceEmailHTML(companyName, contactName string, inv *entity.Invoice, message, viewURL string) string {
	var b strings.Builder
	greeting := "Hello"
	if contactName != "" {
		greeting = "Hello " + html.EscapeString(contactName)
	}
	fmt.Fprintf(&b, `<p>%s,</p>`, greeting)
	fmt.Fprintf(&b, `<p>Invoice <strong>%s</strong> is ready.</p>`, html.EscapeString(inv.InvoiceNumber))
	if message != "" {
		fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(message))
	}
	b.WriteString(lineItemRowsHTML(inv.LineItems))
	fmt.Fprintf(&b, `<p style="text-align:right;">Subtotal: $%s<br>Tax: $%s<br><strong>Total due: $%s</strong></p>`,
		inv.Subtotal.StringFixed(2), inv.TaxAmount.StringFixed(2), inv.TotalAmount.StringFixed(2))
	if inv.DueDate != nil {
		fmt.Fprintf(&b, `<p>Payment is due by <strong>%s</strong>.</p>`, inv.DueDate.Format("January 2, 2006"))
	}
	fmt.Fprintf(&b, `<p style="text-align:center;margin:24px 0;"><a href="%s" style="background:#1a3c6e;color:#fff;padding:12px 28px;border-radius:4px;text-decoration:none;">View invoice</a></p>`, viewURL)
	return emailShell(companyName, b.String())
}
