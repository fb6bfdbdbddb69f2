package transaction

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// buildStatementPDF renders a card statement: masked card details followed by
// one line per transaction and a closing total over posted amounts.
func buildStatementPDF(d *StatementData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Card Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "CARD STATEMENT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Cardholder : %s", d.Card.CardholderName),
		fmt.Sprintf("Card       : **** **** **** %s", d.Card.Last4),
		fmt.Sprintf("Currency   : %s", d.Card.Currency),
		fmt.Sprintf("Generated  : %s", time.Now().Format("2006-01-02")),
	}
	for _, s := range header {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(28, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(72, 7, "Merchant", "B", 0, "L", false, 0, "")
	pdf.CellFormat(28, 7, "Status", "B", 0, "L", false, 0, "")
	pdf.CellFormat(32, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var total float64
	for _, t := range d.Transactions {
		date := ""
		if !t.PostedAt.IsZero() {
			date = t.PostedAt.Format("2006-01-02")
		}
		merchant := t.MerchantName
		if merchant == "" {
			merchant = t.Reference
		}
		pdf.CellFormat(28, 7, date, "", 0, "L", false, 0, "")
		pdf.CellFormat(72, 7, merchant, "", 0, "L", false, 0, "")
		pdf.CellFormat(28, 7, t.Status, "", 0, "L", false, 0, "")
		pdf.CellFormat(32, 7, fmt.Sprintf("%.2f", t.Amount), "", 1, "R", false, 0, "")
		if t.Status == "posted" {
			total += t.Amount
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(128, 7, "Total posted", "T", 0, "L", false, 0, "")
	pdf.CellFormat(32, 7, fmt.Sprintf("%.2f %s", total, d.Card.Currency), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("STATEMENT_%d_%s.pdf", d.Card.ID, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
