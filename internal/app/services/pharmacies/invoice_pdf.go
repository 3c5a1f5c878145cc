package pharmacies

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"

	"github.com/jung-kurt/gofpdf"
)

// renderInvoicePDF lays out a single-order invoice. The document is built
// entirely from already-normalized DTOs so a rendering failure can only come
// from the PDF writer itself.
func renderInvoicePDF(order *responses.Order, profile *responses.PharmacyProfile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", order.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	storeName := "Doorspital Pharmacy"
	if profile != nil && profile.StoreName != "" {
		storeName = profile.StoreName
	}
	pdf.Cell(0, 10, storeName)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	if profile != nil && profile.Address != nil {
		addressParts := []string{profile.Address.Line1, profile.Address.Line2, profile.Address.City, profile.Address.State, profile.Address.Pincode}
		nonEmpty := make([]string, 0, len(addressParts))
		for _, part := range addressParts {
			if part != "" {
				nonEmpty = append(nonEmpty, part)
			}
		}
		if len(nonEmpty) > 0 {
			pdf.Cell(0, 6, strings.Join(nonEmpty, ", "))
			pdf.Ln(6)
		}
	}
	if profile != nil && profile.PhoneNumber != "" {
		pdf.Cell(0, 6, "Phone: "+profile.PhoneNumber)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Invoice")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Order ID: "+order.ID)
	pdf.Ln(6)
	if order.CustomerName != "" {
		pdf.Cell(0, 6, "Customer: "+order.CustomerName)
		pdf.Ln(6)
	}
	placedAt := order.PlacedAt
	if placedAt == "" {
		placedAt = time.Now().UTC().Format("2006-01-02")
	}
	pdf.Cell(0, 6, "Date: "+placedAt)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+order.Status)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(100, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(130, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", order.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, exceptions.ErrInvoiceRender(err)
	}
	return buffer.Bytes(), nil
}
