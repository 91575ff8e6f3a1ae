package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	holdings, err := h.Holdings.GetHoldings(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	responses := make([]schemas.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		responses = append(responses, *schemas.NewHoldingResponse(&holdings[i]))
	}
	h.respond(w, r, responses, http.StatusOK)
}

func (h *Handler) GetHoldingByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holding, err := h.HoldingRepo.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, utils.NotFound("holding not found"))
		return
	}
	if holding.UserID != h.userID(r) {
		h.HandleErrors(w, utils.Forbidden("holding does not belong to the requesting user"))
		return
	}
	h.respond(w, r, schemas.NewHoldingResponse(holding), http.StatusOK)
}

func (h *Handler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	holding, err := h.Holdings.CreateHolding(ctx, h.userID(r), &req, time.Now())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.invalidateDashboardCache(h.userID(r))
	h.respond(w, r, schemas.NewHoldingResponse(holding), http.StatusCreated)
}

func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	holding, err := h.Holdings.UpdateHolding(ctx, h.userID(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.invalidateDashboardCache(h.userID(r))
	h.respond(w, r, schemas.NewHoldingResponse(holding), http.StatusOK)
}

func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	if err := h.Holdings.DeleteHolding(ctx, h.userID(r), chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.invalidateDashboardCache(h.userID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	transactions, err := h.Holdings.GetTransactions(ctx, h.userID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	responses := make([]schemas.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, *schemas.NewTransactionResponse(&transactions[i]))
	}
	h.respond(w, r, responses, http.StatusOK)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	transaction, err := h.Holdings.CreateTransaction(ctx, h.userID(r), chi.URLParam(r, "id"), &req, time.Now())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.invalidateDashboardCache(h.userID(r))
	h.respond(w, r, schemas.NewTransactionResponse(transaction), http.StatusCreated)
}
