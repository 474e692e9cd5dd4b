package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/dashboard"
	"github.com/gajipro/gajipro-backend-go/internal/domain/reset"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
)

// WorkerHandler serves the owner's view of the workforce.
type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	ResetHistory(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	userService      user.UserService
	dashboardService dashboard.DashboardService
	resetService     reset.ResetService
}

func NewWorkerHandler(userService user.UserService, dashboardService dashboard.DashboardService, resetService reset.ResetService) WorkerHandler {
	return &workerHandlerImpl{
		userService:      userService,
		dashboardService: dashboardService,
		resetService:     resetService,
	}
}

// List handles GET /workers
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.userService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// Detail handles GET /workers/{id}
func (h *workerHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	detail, err := h.dashboardService.GetWorkerDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Reset handles POST /workers/{id}/reset. The body is optional.
func (h *workerHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req reset.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.resetService.Reset(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("worker reset",
		"worker_id", id,
		"deleted_work_entries", result.DeletedWorkEntries,
		"deleted_bonuses", result.DeletedBonuses,
		"deactivated_debts", result.DeactivatedDebts,
	)
	response.SuccessWithMessage(w, "Worker reset successfully", result)
}

// ResetHistory handles GET /resets
func (h *workerHandlerImpl) ResetHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.resetService.History(r.Context(), pageParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}
