package services

import (
	"bytes"
	"context"
	"fmt"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InvoiceService aggregates invoice figures and renders printable invoices.
type InvoiceService struct {
	Repo      repositories.InvoiceRepository
	OrderRepo repositories.OrderRepository
}

func (s InvoiceService) Stats(ctx context.Context, rng *domain.DateRange) (models.InvoiceStats, error) {
	return s.Repo.Stats(ctx, rng)
}

// GeneratePDF renders the invoice with its order lines. Returns the document
// bytes along with a download filename.
func (s InvoiceService) GeneratePDF(ctx context.Context, id int64) ([]byte, string, error) {
	if id <= 0 {
		return nil, "", domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}

	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	order, err := s.OrderRepo.GetByID(ctx, inv.OrderID)
	if err != nil {
		return nil, "", err
	}

	utils.LogEventCtx(ctx, "invoices", "generate_pdf", fmt.Sprintf("invoice_id=%d", id))
	return buildInvoicePDF(inv, order)
}

func buildInvoicePDF(inv models.Invoice, order models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	head := []string{
		fmt.Sprintf("Invoice No : %s", inv.Number),
		fmt.Sprintf("Order No   : #%d", inv.OrderID),
		fmt.Sprintf("Customer   : %s", safe(inv.CustomerName, "-")),
		fmt.Sprintf("Issued     : %s", utils.FormatDate(inv.IssuedAt)),
		fmt.Sprintf("Status     : %s", paidLabel(inv.Paid)),
	}
	for _, line := range head {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, utils.FormatMoney(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, utils.FormatMoney(item.UnitPrice*int64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	totals := []struct {
		label string
		value int64
	}{
		{"Subtotal", order.Subtotal},
		{"Discount", -order.Discount},
		{"Total", order.Total},
	}
	for _, t := range totals {
		pdf.CellFormat(150, 7, t.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMoney(t.value), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("%s.pdf", inv.Number), nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func paidLabel(paid bool) string {
	if paid {
		return "PAID"
	}
	return "UNPAID"
}
