package renderer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders the document as an A4 PDF, receipt or invoice depending
// on the paid state.
func PDF(d *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; tr maps the UTF-8 labels and symbols.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(d.Number), false)
	pdf.AddPage()

	title := d.L.Invoice
	if d.Receipt {
		title = d.L.Receipt
	}
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(120, 12, tr(title+" "+d.Number))
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 12, tr(d.L.Issued+": "+d.Issued), "", 1, "R", false, 0, "")
	if d.Paid {
		pdf.SetTextColor(0, 128, 0)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, tr(d.L.PaidInFull), "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	writeParties(pdf, tr, d)
	writeItems(pdf, tr, d)
	writeTotals(pdf, tr, d)

	pdf.SetFont("Helvetica", "", 10)
	if d.Note != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr(d.L.Notes), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(d.Note), "", "L", false)
	}
	if d.PaymentCondition != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr(d.L.PaymentConditions), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, tr(d.PaymentCondition), "", 1, "L", false, 0, "")
	}

	pdf.Ln(16)
	if d.Receipt {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, tr(d.L.ThankYou), "", 1, "C", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, tr(d.L.AuthorizedSignature+": ____________________"), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeParties(pdf *gofpdf.Fpdf, tr func(string) string, d *Document) {
	from := d.L.From
	billTo := d.L.BillTo
	if d.Receipt {
		billTo = d.L.ReceivedFrom
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(95, 6, tr(from), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr(billTo), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	left := append([]string{d.From.Name}, d.From.Lines...)
	right := []string{tr(d.L.NoClientSelected)}
	if !d.NoClient {
		right = append([]string{d.BillTo.Name}, d.BillTo.Lines...)
	}
	for i := 0; i < len(left) || i < len(right); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		pdf.CellFormat(95, 5, tr(l), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, tr(r), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
}

func writeItems(pdf *gofpdf.Fpdf, tr func(string) string, d *Document) {
	if !d.HasItems {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 8, tr(d.L.NoItems), "", 1, "L", false, 0, "")
		return
	}

	withDiscount := d.HasDiscount
	nameW := 80.0
	if !withDiscount {
		nameW = 100.0
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(nameW, 7, tr(d.L.Description), "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, tr(d.L.Qty), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, tr(d.L.UnitPrice), "1", 0, "R", true, 0, "")
	if withDiscount {
		pdf.CellFormat(20, 7, tr(d.L.Discount), "1", 0, "R", true, 0, "")
	}
	pdf.CellFormat(40, 7, tr(d.L.Amount), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range d.Lines {
		pdf.CellFormat(nameW, 7, tr(line.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, tr(line.UnitPrice), "1", 0, "R", false, 0, "")
		if withDiscount {
			disc := line.Discount
			if disc == "" {
				disc = "-"
			}
			pdf.CellFormat(20, 7, tr(disc), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(40, 7, tr(line.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTotals(pdf *gofpdf.Fpdf, tr func(string) string, d *Document) {
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(130, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, tr(value), "", 1, "R", false, 0, "")
	}
	if d.Receipt {
		row(d.L.AmountPaid, d.Total, true)
		return
	}
	row(d.L.Subtotal, d.Subtotal, false)
	if d.HasDiscount {
		row(d.L.Discount, d.Discount, false)
	}
	row(d.L.Tax+" ("+d.TaxRate+"%)", d.Tax, false)
	row(d.L.Total, d.Total, true)
}
