package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

// Generate handles POST /payslips. Workers always generate their own; owners name the worker.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payslip.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if !actor.IsOwner() {
		req.WorkerID = actor.UserID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payslipService.Generate(r.Context(), req.WorkerID, req.Period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated successfully", result)
}

// List handles GET /payslips
func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payslipService.List(r.Context(), actor, pageParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

// Get handles GET /payslips/{id}
func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payslipService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadPDF handles GET /payslips/{id}/pdf
func (h *payslipHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.payslipService.Render(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, doc.Filename, doc.ContentType, doc.Content)
}

// Export handles GET /payslips/export
func (h *payslipHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.payslipService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, doc.Filename, doc.ContentType, doc.Content)
}
