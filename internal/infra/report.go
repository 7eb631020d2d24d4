package infra

// Closing report PDF generation using go-pdf/fpdf.
// One A5 page per closed register: opening/closing metadata, the sales
// aggregates by tender type, the expected-vs-counted variance, and the
// movement ledger.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// GenerateClosingReportPDF writes the till summary for a closed register.
// Returns the absolute path to the generated file.
func GenerateClosingReportPDF(reg *model.CashRegister, movements []model.CashMovement, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("report: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("fechamento_%s.pdf", reg.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Fechamento de Caixa", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Aberto em: %s", reg.OpenedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	if reg.ClosedAt != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Fechado em: %s", reg.ClosedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(3)

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(contentW*0.6, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 5, value, "", 1, "R", false, 0, "")
	}

	row("Valor inicial", "R$ "+reg.InitialAmount.StringFixed(2), false)
	row(fmt.Sprintf("Vendas (%d)", reg.SalesCount), "R$ "+reg.TotalSales.StringFixed(2), false)
	row("Dinheiro", "R$ "+reg.TotalCashSales.StringFixed(2), false)
	row("Cartão", "R$ "+reg.TotalCardSales.StringFixed(2), false)
	row("Pix", "R$ "+reg.TotalPixSales.StringFixed(2), false)
	pdf.Ln(1)
	row("Esperado no caixa", "R$ "+reg.ExpectedCash().StringFixed(2), true)
	if reg.FinalAmount != nil {
		row("Contado", "R$ "+reg.FinalAmount.StringFixed(2), true)
		variance := reg.FinalAmount.Sub(reg.ExpectedCash())
		row("Diferença", "R$ "+variance.StringFixed(2), true)
	}

	if len(movements) > 0 {
		pdf.Ln(3)
		pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Movimentações", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		for _, m := range movements {
			pdf.CellFormat(contentW*0.25, 4, m.CreatedAt.Format("15:04"), "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.45, 4, m.Type, "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.30, 4, "R$ "+m.Amount.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("report: write PDF: %w", err)
	}
	return filePath, nil
}
