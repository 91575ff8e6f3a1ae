package models

import "time"

type ReportSchedule struct {
	ID          uint       `gorm:"primaryKey;column:id"`
	UserID      string     `gorm:"column:user_id"`
	Name        string     `gorm:"column:name"`
	CronSpec    string     `gorm:"column:cron_spec"`
	Format      string     `gorm:"column:format"`
	Granularity string     `gorm:"column:granularity"`
	PeriodCount int        `gorm:"column:period_count"`
	Active      bool       `gorm:"column:active"`
	LastRunAt   *time.Time `gorm:"column:last_run_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (ReportSchedule) TableName() string {
	return "report_schedules"
}
