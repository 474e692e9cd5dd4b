package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
)

// LedgerHandler manages debt and bonus entries. Listing is open to workers
// for their own rows; everything else is the owner's.
type LedgerHandler interface {
	ListDebts(w http.ResponseWriter, r *http.Request)
	AddDebt(w http.ResponseWriter, r *http.Request)
	SettleDebt(w http.ResponseWriter, r *http.Request)
	ListBonuses(w http.ResponseWriter, r *http.Request)
	AddBonus(w http.ResponseWriter, r *http.Request)
	DeleteBonus(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	debtService  debt.DebtService
	bonusService bonus.BonusService
}

func NewLedgerHandler(debtService debt.DebtService, bonusService bonus.BonusService) LedgerHandler {
	return &ledgerHandlerImpl{
		debtService:  debtService,
		bonusService: bonusService,
	}
}

// ListDebts handles GET /debts
func (h *ledgerHandlerImpl) ListDebts(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !actor.IsOwner() {
		result, err := h.debtService.Summary(r.Context(), actor.UserID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	filter, err := parseDebtFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.debtService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

// AddDebt handles POST /debts
func (h *ledgerHandlerImpl) AddDebt(w http.ResponseWriter, r *http.Request) {
	var req debt.AddDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.debtService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Debt recorded successfully", result)
}

// SettleDebt handles PUT /debts/{id}/settle
func (h *ledgerHandlerImpl) SettleDebt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.debtService.Settle(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Debt settled", nil)
}

// ListBonuses handles GET /bonuses
func (h *ledgerHandlerImpl) ListBonuses(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !actor.IsOwner() {
		result, err := h.bonusService.Summary(r.Context(), actor.UserID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.bonusService.List(r.Context(), bonus.Filter{Page: pageParam(r)})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

// AddBonus handles POST /bonuses
func (h *ledgerHandlerImpl) AddBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.bonusService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus added successfully", result)
}

// DeleteBonus handles DELETE /bonuses/{id}
func (h *ledgerHandlerImpl) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.bonusService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted successfully", nil)
}

func parseDebtFilter(r *http.Request) (debt.Filter, error) {
	filter := debt.Filter{Page: pageParam(r)}

	if s := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))); s != "" {
		status := debt.Status(s)
		if !status.IsValid() {
			return filter, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be one of: aktif, lunas, nonaktif",
			}}
		}
		filter.Status = &status
	}

	return filter, nil
}
