package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
)

func (h *Handler) GetPeriodReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	granularity, count, err := parsePeriodParams(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	holdings, txsByHolding, err := h.ownerLedger(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	report := h.Periods.PeriodReport(holdings, txsByHolding, granularity, count, time.Now())
	h.respond(w, r, report, http.StatusOK)
}

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dimension, err := schemas.ParseRankDimension(r.URL.Query().Get("dimension"))
	if err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	direction, err := schemas.ParseRankDirection(r.URL.Query().Get("direction"))
	if err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			h.HandleErrors(w, utils.UnprocessableEntity("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	holdings, err := h.HoldingRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	ranked := h.Performance.Rank(holdings, dimension, direction, limit, time.Now())
	h.respond(w, r, ranked, http.StatusOK)
}

func (h *Handler) GetCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holdings, err := h.HoldingRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, h.Performance.CategoryPerformance(holdings, time.Now()), http.StatusOK)
}

func (h *Handler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	groupBy, err := schemas.ParseGroupBy(r.URL.Query().Get("groupBy"))
	if err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	holdings, err := h.HoldingRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, h.Distribution.Distribution(holdings, groupBy), http.StatusOK)
}

func (h *Handler) GetSizeDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holdings, err := h.HoldingRepo.GetByUserID(ctx, h.userID(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, h.Distribution.SizeDistribution(holdings), http.StatusOK)
}

// GetReportFile exports the full report document in the requested format.
func (h *Handler) GetReportFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	granularity, count, err := parsePeriodParams(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	userID := h.userID(r)
	holdings, txsByHolding, err := h.ownerLedger(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	doc := h.Summary.ReportDocument(userID, holdings, txsByHolding, granularity, count, time.Now())

	switch r.URL.Query().Get("format") {
	case "XLSX", "xlsx", "":
		file, err := h.Export.GenerateXLSX(doc)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=portfolio-report.xlsx")
		if err := file.Write(w); err != nil {
			h.Logger.Warning("failed to stream xlsx: ", err)
		}
	case "PDF", "pdf":
		data, err := h.Export.GeneratePDF(doc)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=portfolio-report.pdf")
		_, _ = w.Write(data)
	case "CSV", "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=portfolio-report.csv")
		if err := h.Export.GenerateCSV(w, doc); err != nil {
			h.Logger.Warning("failed to stream csv: ", err)
		}
	default:
		h.HandleErrors(w, utils.UnprocessableEntity("format must be XLSX, PDF or CSV"))
	}
}

func parsePeriodParams(r *http.Request) (schemas.Granularity, int, error) {
	granularity := schemas.GranularityMonth
	if granularityStr := r.URL.Query().Get("granularity"); granularityStr != "" {
		parsed, err := schemas.ParseGranularity(granularityStr)
		if err != nil {
			return granularity, 0, utils.UnprocessableEntity(err.Error())
		}
		granularity = parsed
	}

	count := 12
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil {
			return granularity, 0, utils.UnprocessableEntity("count must be an integer")
		}
		count = parsed
	}
	return granularity, count, nil
}
