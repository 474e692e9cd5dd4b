package http

import (
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
)

type BalanceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type balanceHandlerImpl struct {
	balanceService balance.BalanceService
}

func NewBalanceHandler(balanceService balance.BalanceService) BalanceHandler {
	return &balanceHandlerImpl{balanceService: balanceService}
}

// Get handles GET /balance for the calling worker
func (h *balanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	b, err := h.balanceService.Balances(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance.NewBalanceResponse(actor.UserID, b))
}
