package schemas

import (
	"time"

	"tracker/src/models"
)

type CreateReportScheduleRequest struct {
	Name        string `json:"name"`
	CronSpec    string `json:"cronSpec"`
	Format      string `json:"format"`
	Granularity string `json:"granularity"`
	PeriodCount int    `json:"periodCount"`
}

type UpdateReportScheduleRequest struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name,omitempty"`
	CronSpec    *string `json:"cronSpec,omitempty"`
	Format      *string `json:"format,omitempty"`
	Granularity *string `json:"granularity,omitempty"`
	PeriodCount *int    `json:"periodCount,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type ReportScheduleResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	CronSpec    string     `json:"cronSpec"`
	Format      string     `json:"format"`
	Granularity string     `json:"granularity"`
	PeriodCount int        `json:"periodCount"`
	Active      bool       `json:"active"`
	LastRunAt   *time.Time `json:"lastRunAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewReportScheduleResponse(rs *models.ReportSchedule) *ReportScheduleResponse {
	return &ReportScheduleResponse{
		ID:          rs.ID,
		Name:        rs.Name,
		CronSpec:    rs.CronSpec,
		Format:      rs.Format,
		Granularity: rs.Granularity,
		PeriodCount: rs.PeriodCount,
		Active:      rs.Active,
		LastRunAt:   rs.LastRunAt,
		CreatedAt:   rs.CreatedAt,
	}
}
