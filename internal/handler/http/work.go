package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
)

type WorkHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type workHandlerImpl struct {
	workService work.WorkService
}

func NewWorkHandler(workService work.WorkService) WorkHandler {
	return &workHandlerImpl{workService: workService}
}

// Submit handles POST /work
func (h *workHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req work.SubmitWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.workService.Submit(r.Context(), actor.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work submitted, waiting for approval", entry)
}

// List handles GET /work. Workers see their own entries; owners may filter by status and worker name.
func (h *workHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var result work.ListWorkEntryResponse
	if actor.IsOwner() {
		filter, err := parseWorkFilter(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		result, err = h.workService.List(r.Context(), filter)
		if err != nil {
			response.HandleError(w, err)
			return
		}
	} else {
		result, err = h.workService.ListByWorker(r.Context(), actor.UserID, pageParam(r))
		if err != nil {
			response.HandleError(w, err)
			return
		}
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

func parseWorkFilter(r *http.Request) (work.Filter, error) {
	filter := work.Filter{Page: pageParam(r)}
	query := r.URL.Query()

	if s := strings.ToLower(strings.TrimSpace(query.Get("status"))); s != "" {
		status := work.Status(s)
		if !status.IsValid() {
			return filter, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			}}
		}
		filter.Status = &status
	}
	if name := strings.TrimSpace(query.Get("worker_name")); name != "" {
		filter.WorkerName = &name
	}

	return filter, nil
}

// UpdateStatus handles PUT /work/{id}/status
func (h *workHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req work.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	status := work.Status(strings.ToLower(req.Status))
	if err := h.workService.SetStatus(r.Context(), id, status); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry "+string(status), nil)
}
