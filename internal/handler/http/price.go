package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
)

type PriceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type priceHandlerImpl struct {
	priceService price.PriceService
}

func NewPriceHandler(priceService price.PriceService) PriceHandler {
	return &priceHandlerImpl{priceService: priceService}
}

// List handles GET /prices
func (h *priceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	prices, err := h.priceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prices)
}

// Upsert handles POST /prices. An existing (size, subtype) row is updated in place.
func (h *priceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req price.UpsertPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.priceService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("price saved", "size", result.Size, "subtype", result.Subtype, "price", result.Price)
	response.SuccessWithMessage(w, "Price saved successfully", result)
}

// Delete handles DELETE /prices/{id}
func (h *priceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.priceService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, price.ErrPriceNotFound) {
			response.NotFound(w, "Price not found")
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Price deleted successfully", nil)
}
