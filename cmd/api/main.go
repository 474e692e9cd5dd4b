package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/config"
	appHTTP "github.com/gajipro/gajipro-backend-go/internal/handler/http"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/cron"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/document"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/jwt"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/logger"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/storage"
	"github.com/gajipro/gajipro-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/gajipro/gajipro-backend-go/internal/service/auth"
	balanceService "github.com/gajipro/gajipro-backend-go/internal/service/balance"
	bonusService "github.com/gajipro/gajipro-backend-go/internal/service/bonus"
	dashboardService "github.com/gajipro/gajipro-backend-go/internal/service/dashboard"
	debtService "github.com/gajipro/gajipro-backend-go/internal/service/debt"
	"github.com/gajipro/gajipro-backend-go/internal/service/file"
	payslipService "github.com/gajipro/gajipro-backend-go/internal/service/payslip"
	priceService "github.com/gajipro/gajipro-backend-go/internal/service/price"
	resetService "github.com/gajipro/gajipro-backend-go/internal/service/reset"
	userService "github.com/gajipro/gajipro-backend-go/internal/service/user"
	workService "github.com/gajipro/gajipro-backend-go/internal/service/work"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	log, logCloser, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer logCloser.Close()
	log = log.With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	if err := postgresql.SeedOwner(ctx, db, cfg.Seed.OwnerUsername, cfg.Seed.OwnerPassword, cfg.Seed.OwnerFullName); err != nil {
		return err
	}
	if err := postgresql.SeedPrices(ctx, db); err != nil {
		return err
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize local storage: %w", err)
	}
	fileService := file.NewFileService(fileStorage)

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	priceRepo := postgresql.NewPriceRepository(db)
	workRepo := postgresql.NewWorkRepository(db)
	debtRepo := postgresql.NewDebtRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	resetRepo := postgresql.NewResetRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	scheduler := cron.NewScheduler()
	cron.RegisterJobs(scheduler, refreshTokenRepo)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := serviceAuth.NewAuthService(userRepo, refreshTokenRepo, JWTService)
	userSvc := userService.NewUserService(userRepo, fileService)
	priceSvc := priceService.NewPriceService(priceRepo)
	workSvc := workService.NewWorkService(workRepo, priceRepo)
	debtSvc := debtService.NewDebtService(debtRepo, userRepo)
	bonusSvc := bonusService.NewBonusService(bonusRepo, userRepo)
	balanceSvc := balanceService.NewBalanceService(balanceRepo)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, balanceRepo, userRepo, document.NewPDFRenderer(), document.NewXLSXExporter())
	resetSvc := resetService.NewResetService(resetRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, balanceRepo, workRepo, userRepo, debtRepo, bonusRepo, fileService)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         log,
			AllowedOrigins: cfg.App.AllowedOrigins,
			UploadDir:      fileStorage.BasePath(),
		},
		JWTService,
		appHTTP.NewAuthHandler(JWTService, authSvc),
		appHTTP.NewProfileHandler(userSvc),
		appHTTP.NewPriceHandler(priceSvc),
		appHTTP.NewWorkHandler(workSvc),
		appHTTP.NewBalanceHandler(balanceSvc),
		appHTTP.NewWorkerHandler(userSvc, dashboardSvc, resetSvc),
		appHTTP.NewLedgerHandler(debtSvc, bonusSvc),
		appHTTP.NewPayslipHandler(payslipSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
