package http

import (
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/dashboard"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the worker or owner dashboard depending on the caller's role
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetStatistics returns approved totals per month
	GetStatistics(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if actor.IsOwner() {
		result, err := h.dashboardService.GetOwnerDashboard(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.dashboardService.GetWorkerDashboard(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatistics handles GET /statistics
func (h *dashboardHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStatistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
