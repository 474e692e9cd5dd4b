package http

import (
	"log/slog"
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/handler/http/middleware"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the non-handler settings of the HTTP surface.
type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// UploadDir is served read-only under /uploads.
	UploadDir string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authHandler AuthHandler,
	profileHandler ProfileHandler,
	priceHandler PriceHandler,
	workHandler WorkHandler,
	balanceHandler BalanceHandler,
	workerHandler WorkerHandler,
	ledgerHandler LedgerHandler,
	payslipHandler PayslipHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/me", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
				r.Put("/password", profileHandler.ChangePassword)
				r.Post("/photo", profileHandler.UploadPhoto)
			})

			r.Route("/prices", func(r chi.Router) {
				r.Get("/", priceHandler.List)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/", priceHandler.Upsert)
					r.Delete("/{id}", priceHandler.Delete)
				})
			})

			r.Route("/work", func(r chi.Router) {
				r.Get("/", workHandler.List)
				r.With(middleware.RequireWorker).Post("/", workHandler.Submit)
				r.With(middleware.RequireOwner).Put("/{id}/status", workHandler.UpdateStatus)
			})

			r.With(middleware.RequireWorker).Get("/balance", balanceHandler.Get)

			r.Get("/debts", ledgerHandler.ListDebts)
			r.Get("/bonuses", ledgerHandler.ListBonuses)

			r.Route("/payslips", func(r chi.Router) {
				r.Post("/", payslipHandler.Generate)
				r.Get("/", payslipHandler.List)
				r.With(middleware.RequireOwner).Get("/export", payslipHandler.Export)
				r.Get("/{id}", payslipHandler.Get)
				r.Get("/{id}/pdf", payslipHandler.DownloadPDF)
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			// Owner only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Route("/workers", func(r chi.Router) {
					r.Get("/", workerHandler.List)
					r.Get("/{id}", workerHandler.Detail)
					r.Post("/{id}/reset", workerHandler.Reset)
				})
				r.Get("/resets", workerHandler.ResetHistory)

				r.Post("/debts", ledgerHandler.AddDebt)
				r.Put("/debts/{id}/settle", ledgerHandler.SettleDebt)

				r.Post("/bonuses", ledgerHandler.AddBonus)
				r.Delete("/bonuses/{id}", ledgerHandler.DeleteBonus)

				r.Get("/statistics", dashboardHandler.GetStatistics)
			})
		})
	})
	return r
}
