package payslip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/document"
)

type PayslipServiceImpl struct {
	payslip.PayslipRepository
	balanceRepository balance.BalanceRepository
	userRepository    user.UserRepository
	renderer          payslip.Renderer
	exporter          payslip.Exporter
	now               func() time.Time
}

func NewPayslipService(
	payslipRepository payslip.PayslipRepository,
	balanceRepository balance.BalanceRepository,
	userRepository user.UserRepository,
	renderer payslip.Renderer,
	exporter payslip.Exporter,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		PayslipRepository: payslipRepository,
		balanceRepository: balanceRepository,
		userRepository:    userRepository,
		renderer:          renderer,
		exporter:          exporter,
		now:               time.Now,
	}
}

// Generate implements payslip.PayslipService. The balances are read once and
// frozen into the new row.
func (s *PayslipServiceImpl) Generate(ctx context.Context, workerID string, period string) (payslip.PayslipResponse, error) {
	worker, err := s.userRepository.GetWorker(ctx, workerID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	period = strings.TrimSpace(period)
	if period == "" {
		period = payslip.DefaultPeriod(s.now())
	}

	b, err := s.balanceRepository.GetByWorker(ctx, workerID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	snapshot := payslip.NewSnapshot(workerID, period, b)
	snapshot.WorkerName = &worker.FullName

	created, err := s.Create(ctx, snapshot)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.NewPayslipResponse(created), nil
}

// load fetches a payslip the actor may see. Other workers' payslips look missing.
func (s *PayslipServiceImpl) load(ctx context.Context, actor user.Actor, id string) (payslip.Payslip, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return payslip.Payslip{}, err
	}
	if !actor.CanAccessWorker(p.WorkerID) {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return p, nil
}

// Get implements payslip.PayslipService.
func (s *PayslipServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (payslip.PayslipResponse, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.NewPayslipResponse(p), nil
}

// Render implements payslip.PayslipService. It renders the stored row and
// never recomputes balances.
func (s *PayslipServiceImpl) Render(ctx context.Context, actor user.Actor, id string) (payslip.Document, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return payslip.Document{}, err
	}

	content, err := s.renderer.RenderPayslip(p, s.now())
	if err != nil {
		return payslip.Document{}, err
	}

	return payslip.Document{
		Filename:    p.Filename(),
		ContentType: document.ContentTypePDF,
		Content:     content,
	}, nil
}

// List implements payslip.PayslipService.
func (s *PayslipServiceImpl) List(ctx context.Context, actor user.Actor, page int) (payslip.ListPayslipResponse, error) {
	if page < 1 {
		page = 1
	}

	filter := payslip.Filter{Page: page, Limit: payslip.PageSize}
	if !actor.IsOwner() {
		filter.WorkerID = &actor.UserID
	}

	payslips, total, err := s.PayslipRepository.List(ctx, filter)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	data := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		data = append(data, payslip.NewPayslipResponse(p))
	}

	return payslip.ListPayslipResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Export implements payslip.PayslipService.
func (s *PayslipServiceImpl) Export(ctx context.Context) (payslip.Document, error) {
	payslips, err := s.ListAll(ctx)
	if err != nil {
		return payslip.Document{}, err
	}

	content, err := s.exporter.ExportPayslips(payslips)
	if err != nil {
		return payslip.Document{}, err
	}

	return payslip.Document{
		Filename:    fmt.Sprintf("slip_gaji_%s.xlsx", s.now().Format("20060102")),
		ContentType: document.ContentTypeXLSX,
		Content:     content,
	}, nil
}
