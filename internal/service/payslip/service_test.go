package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	mock_balance "github.com/gajipro/gajipro-backend-go/internal/domain/balance/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	mock_payslip "github.com/gajipro/gajipro-backend-go/internal/domain/payslip/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	mock_user "github.com/gajipro/gajipro-backend-go/internal/domain/user/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type payslipFixture struct {
	payslips *mock_payslip.MockPayslipRepository
	balances *mock_balance.MockBalanceRepository
	users    *mock_user.MockUserRepository
	renderer *mock_payslip.MockRenderer
	exporter *mock_payslip.MockExporter
	service  *PayslipServiceImpl
}

var fixedNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

func newPayslipFixture(t *testing.T) payslipFixture {
	ctrl := gomock.NewController(t)
	f := payslipFixture{
		payslips: mock_payslip.NewMockPayslipRepository(ctrl),
		balances: mock_balance.NewMockBalanceRepository(ctrl),
		users:    mock_user.NewMockUserRepository(ctrl),
		renderer: mock_payslip.NewMockRenderer(ctrl),
		exporter: mock_payslip.NewMockExporter(ctrl),
	}
	svc := NewPayslipService(f.payslips, f.balances, f.users, f.renderer, f.exporter).(*PayslipServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	f.service = svc
	return f
}

func TestPayslipService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes current balances under the default period", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.users.EXPECT().GetWorker(ctx, "worker-1").Return(user.User{ID: "worker-1", FullName: "Budi"}, nil)
		f.balances.EXPECT().GetByWorker(ctx, "worker-1").Return(
			balance.New(decimal.NewFromInt(0), decimal.NewFromInt(0), decimal.NewFromInt(500)), nil,
		)
		f.payslips.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p payslip.Payslip) (payslip.Payslip, error) {
			assert.Equal(t, "Juni 2024", p.Period)
			assert.Equal(t, "-500", p.NetPay.String())
			p.ID = "slip-1"
			return p, nil
		})

		resp, err := f.service.Generate(ctx, "worker-1", "  ")
		require.NoError(t, err)
		assert.Equal(t, "slip-1", resp.ID)
		assert.Equal(t, "Budi", *resp.WorkerName)
	})

	t.Run("unknown worker", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.users.EXPECT().GetWorker(ctx, "owner-1").Return(user.User{}, user.ErrWorkerNotFound)

		_, err := f.service.Generate(ctx, "owner-1", "Mei 2024")
		assert.ErrorIs(t, err, user.ErrWorkerNotFound)
	})
}

func TestPayslipService_Render(t *testing.T) {
	ctx := context.Background()
	stored := payslip.Payslip{ID: "slip-1", WorkerID: "worker-1", Period: "Juni 2024", NetPay: decimal.NewFromInt(165000)}

	t.Run("own payslip renders the stored row", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.payslips.EXPECT().GetByID(ctx, "slip-1").Return(stored, nil)
		f.renderer.EXPECT().RenderPayslip(stored, fixedNow).Return([]byte("%PDF-1.3"), nil)

		doc, err := f.service.Render(ctx, user.Actor{UserID: "worker-1", Role: user.RoleWorker}, "slip-1")
		require.NoError(t, err)
		assert.Equal(t, "slip_gaji_slip-1.pdf", doc.Filename)
		assert.Equal(t, "application/pdf", doc.ContentType)
	})

	t.Run("other worker sees not found", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.payslips.EXPECT().GetByID(ctx, "slip-1").Return(stored, nil)

		_, err := f.service.Render(ctx, user.Actor{UserID: "worker-2", Role: user.RoleWorker}, "slip-1")
		assert.ErrorIs(t, err, payslip.ErrPayslipNotFound)
	})

	t.Run("owner reads any payslip", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.payslips.EXPECT().GetByID(ctx, "slip-1").Return(stored, nil)

		resp, err := f.service.Get(ctx, user.Actor{UserID: "owner-1", Role: user.RoleOwner}, "slip-1")
		require.NoError(t, err)
		assert.Equal(t, "slip-1", resp.ID)
	})
}

func TestPayslipService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("worker only sees own", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.payslips.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter payslip.Filter) ([]payslip.Payslip, int64, error) {
			require.NotNil(t, filter.WorkerID)
			assert.Equal(t, "worker-1", *filter.WorkerID)
			assert.Equal(t, payslip.PageSize, filter.Limit)
			return []payslip.Payslip{{ID: "slip-1", WorkerID: "worker-1"}}, 1, nil
		})

		resp, err := f.service.List(ctx, user.Actor{UserID: "worker-1", Role: user.RoleWorker}, 0)
		require.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, 1, resp.Page)
	})

	t.Run("owner sees all", func(t *testing.T) {
		f := newPayslipFixture(t)

		f.payslips.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter payslip.Filter) ([]payslip.Payslip, int64, error) {
			assert.Nil(t, filter.WorkerID)
			return nil, 0, nil
		})

		_, err := f.service.List(ctx, user.Actor{UserID: "owner-1", Role: user.RoleOwner}, 1)
		require.NoError(t, err)
	})
}

func TestPayslipService_Export(t *testing.T) {
	ctx := context.Background()
	f := newPayslipFixture(t)
	all := []payslip.Payslip{{ID: "slip-1"}, {ID: "slip-2"}}

	f.payslips.EXPECT().ListAll(ctx).Return(all, nil)
	f.exporter.EXPECT().ExportPayslips(all).Return([]byte("xlsx"), nil)

	doc, err := f.service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "slip_gaji_20240615.xlsx", doc.Filename)
	assert.Equal(t, []byte("xlsx"), doc.Content)
}
