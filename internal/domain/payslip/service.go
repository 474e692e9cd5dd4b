package payslip

import (
	"context"

	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
)

type PayslipService interface {
	Generate(ctx context.Context, workerID string, period string) (PayslipResponse, error)
	Get(ctx context.Context, actor user.Actor, id string) (PayslipResponse, error)
	Render(ctx context.Context, actor user.Actor, id string) (Document, error)
	List(ctx context.Context, actor user.Actor, page int) (ListPayslipResponse, error)
	Export(ctx context.Context) (Document, error)
}
