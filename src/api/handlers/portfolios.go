package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) GetPortfolios(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	portfolios, err := h.PortfolioRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	responses := make([]schemas.PortfolioResponse, 0, len(portfolios))
	for i := range portfolios {
		responses = append(responses, *schemas.NewPortfolioResponse(&portfolios[i]))
	}
	h.respond(w, r, responses, http.StatusOK)
}

func (h *Handler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}
	if req.Name == "" {
		h.HandleErrors(w, utils.UnprocessableEntity("name is required"))
		return
	}

	p := &models.Portfolio{
		ID:          uuid.NewString(),
		UserID:      h.userID(r),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.PortfolioRepo.Create(ctx, p, nil); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.NewPortfolioResponse(p), http.StatusCreated)
}

func (h *Handler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")
	portfolios, err := h.PortfolioRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	owned := false
	for _, p := range portfolios {
		if p.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		h.HandleErrors(w, utils.NotFound("portfolio not found"))
		return
	}

	if err := h.PortfolioRepo.SoftDelete(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
