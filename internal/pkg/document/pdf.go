package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/money"
	"github.com/go-pdf/fpdf"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PDFRenderer lays payslips out on a single A4 page.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderPayslip implements payslip.Renderer.
func (r *PDFRenderer) RenderPayslip(p payslip.Payslip, printedAt time.Time) ([]byte, error) {
	pdf := layoutPayslip(p, printedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// layoutPayslip draws the page. Core fonts are cp1252, so free text goes
// through the translator.
func layoutPayslip(p payslip.Payslip, printedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "SLIP GAJI KARYAWAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Sistem Manajemen Gaji", "", 1, "C", false, 0, "")
	pdf.Line(10, 35, 200, 35)
	pdf.Ln(10)

	// Identity
	name := ""
	if p.WorkerName != nil {
		name = *p.WorkerName
	}
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr("Nama: "+name), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, tr("Periode: "+p.Period), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, "Tanggal: "+p.CreatedAt.Format("02-01-2006 15:04"), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Breakdown
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "RINCIAN GAJI", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	rows := []struct {
		label  string
		amount string
	}{
		{"Total Kerja", money.Rupiah(p.GrossPay)},
		{"Bonus", money.Rupiah(p.TotalBonus)},
		{"Potongan Hutang", money.Rupiah(p.ActiveDebt)},
	}
	for _, row := range rows {
		pdf.CellFormat(100, 8, row.label, "", 0, "", false, 0, "")
		pdf.CellFormat(0, 8, row.amount, "", 1, "R", false, 0, "")
	}

	y := pdf.GetY()
	pdf.Line(10, y, 200, y)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 10, "GAJI BERSIH", "", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, money.Rupiah(p.NetPay), "", 1, "R", false, 0, "")

	// Footer
	pdf.Ln(20)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, "Dicetak pada: "+printedAt.Format("02-01-2006 15:04"), "", 1, "C", false, 0, "")

	return pdf
}
