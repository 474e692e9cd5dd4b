package payslip

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_payslip

type PayslipRepository interface {
	Create(ctx context.Context, p Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	List(ctx context.Context, filter Filter) ([]Payslip, int64, error)
	ListAll(ctx context.Context) ([]Payslip, error)
}

// Renderer lays a frozen payslip out as a printable document.
type Renderer interface {
	RenderPayslip(p Payslip, printedAt time.Time) ([]byte, error)
}

// Exporter writes payslips as a spreadsheet.
type Exporter interface {
	ExportPayslips(payslips []Payslip) ([]byte, error)
}
