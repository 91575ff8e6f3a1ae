package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllReportSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.ScheduleRepo.GetAll()
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	responses := make([]schemas.ReportScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *schemas.NewReportScheduleResponse(&schedules[i]))
	}
	h.respond(w, r, responses, http.StatusOK)
}

func (h *Handler) GetReportScheduleByID(w http.ResponseWriter, r *http.Request) {
	id, err := scheduleID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	schedule, err := h.ScheduleRepo.GetByID(id)
	if err != nil {
		h.HandleErrors(w, utils.NotFound("report schedule not found"))
		return
	}
	h.respond(w, r, schemas.NewReportScheduleResponse(schedule), http.StatusOK)
}

func (h *Handler) CreateReportSchedule(w http.ResponseWriter, r *http.Request) {
	var req schemas.CreateReportScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}
	if req.CronSpec == "" || req.Name == "" {
		h.HandleErrors(w, utils.UnprocessableEntity("name and cronSpec are required"))
		return
	}

	schedule := &models.ReportSchedule{
		UserID:      h.userID(r),
		Name:        req.Name,
		CronSpec:    req.CronSpec,
		Format:      req.Format,
		Granularity: req.Granularity,
		PeriodCount: req.PeriodCount,
		Active:      true,
	}
	if err := h.ScheduleRepo.Create(schedule); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.NewReportScheduleResponse(schedule), http.StatusCreated)
}

func (h *Handler) UpdateReportSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := scheduleID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateReportScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	schedule, err := h.ScheduleRepo.GetByID(id)
	if err != nil {
		h.HandleErrors(w, utils.NotFound("report schedule not found"))
		return
	}

	if req.Name != nil {
		schedule.Name = *req.Name
	}
	if req.CronSpec != nil {
		schedule.CronSpec = *req.CronSpec
	}
	if req.Format != nil {
		schedule.Format = *req.Format
	}
	if req.Granularity != nil {
		schedule.Granularity = *req.Granularity
	}
	if req.PeriodCount != nil {
		schedule.PeriodCount = *req.PeriodCount
	}
	if req.Active != nil {
		schedule.Active = *req.Active
	}

	if err := h.ScheduleRepo.Update(schedule); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.NewReportScheduleResponse(schedule), http.StatusOK)
}

func (h *Handler) DeleteReportSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := scheduleID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.ScheduleRepo.Delete(id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func scheduleID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, utils.UnprocessableEntity("invalid schedule id")
	}
	return uint(id), nil
}
