package document

import (
	"bytes"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	"github.com/xuri/excelize/v2"
)

const payslipSheet = "Slip Gaji"

var payslipHeadings = []string{
	"ID", "Nama", "Periode", "Total Kerja", "Bonus", "Potongan Hutang", "Gaji Bersih", "Dibuat",
}

// XLSXExporter writes payslips as one sheet, one row per payslip.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ExportPayslips implements payslip.Exporter.
func (e *XLSXExporter) ExportPayslips(payslips []payslip.Payslip) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payslipSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	// Add headers
	for i, heading := range payslipHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(payslipSheet, cell, heading); err != nil {
			return nil, fmt.Errorf("failed to write heading: %w", err)
		}
	}

	// Add data
	for i, p := range payslips {
		name := ""
		if p.WorkerName != nil {
			name = *p.WorkerName
		}
		values := []interface{}{
			p.ID,
			name,
			p.Period,
			p.GrossPay.InexactFloat64(),
			p.TotalBonus.InexactFloat64(),
			p.ActiveDebt.InexactFloat64(),
			p.NetPay.InexactFloat64(),
			p.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(payslipSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write payslip row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
