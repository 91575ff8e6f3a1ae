package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"

	gocache "github.com/patrickmn/go-cache"
)

const dashboardCacheTTL = 2 * time.Minute

func dashboardCacheKey(userID string) string {
	return "dashboard:summary:" + userID
}

func (h *Handler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	userID := h.userID(r)
	key := dashboardCacheKey(userID)

	// Redis first, then the in-process cache.
	if h.Redis != nil {
		var cached schemas.DashboardSummary
		if err := h.Redis.Get(key, &cached); err == nil {
			h.respond(w, r, &cached, http.StatusOK)
			return
		}
	} else if cached, found := h.LocalCache.Get(key); found {
		h.respond(w, r, cached, http.StatusOK)
		return
	}

	holdings, txsByHolding, err := h.ownerLedger(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	recent, err := h.ActivityRepo.GetRecentByUserID(ctx, userID, 1)
	if err != nil {
		h.Logger.Warning("failed to load recent activity: ", err)
	}

	summary := h.Summary.DashboardSummary(holdings, txsByHolding, recent, time.Now())

	if h.Redis != nil {
		if err := h.Redis.Set(key, summary, dashboardCacheTTL); err != nil {
			h.Logger.Warning("failed to cache dashboard summary: ", err)
		}
	} else {
		h.LocalCache.Set(key, summary, gocache.DefaultExpiration)
	}
	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetPerformanceChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	months := 12
	if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			h.HandleErrors(w, utils.UnprocessableEntity("months must be an integer"))
			return
		}
		months = parsed
	}

	holdings, txsByHolding, err := h.ownerLedger(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	chart := h.Summary.PerformanceChart(holdings, txsByHolding, months, time.Now())
	h.respond(w, r, chart, http.StatusOK)
}

func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holdings, err := h.HoldingRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, h.Summary.Allocation(holdings), http.StatusOK)
}

func (h *Handler) invalidateDashboardCache(userID string) {
	key := dashboardCacheKey(userID)
	if h.Redis != nil {
		if err := h.Redis.Delete(key); err != nil {
			h.Logger.Warning("failed to invalidate dashboard cache: ", err)
		}
	}
	h.LocalCache.Delete(key)
}
