package repositories

import (
	"tracker/src/models"

	"gorm.io/gorm"
)

type ReportScheduleRepository interface {
	GetAll() ([]models.ReportSchedule, error)
	GetByID(id uint) (*models.ReportSchedule, error)
	Create(rs *models.ReportSchedule) error
	Update(rs *models.ReportSchedule) error
	Delete(id uint) error
}

type reportScheduleRepo struct {
	db *gorm.DB
}

func NewReportScheduleRepository(db *gorm.DB) ReportScheduleRepository {
	return &reportScheduleRepo{db: db}
}

func (r *reportScheduleRepo) GetAll() ([]models.ReportSchedule, error) {
	var schedules []models.ReportSchedule
	if err := r.db.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *reportScheduleRepo) GetByID(id uint) (*models.ReportSchedule, error) {
	var schedule models.ReportSchedule
	if err := r.db.First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *reportScheduleRepo) Create(rs *models.ReportSchedule) error {
	return r.db.Create(rs).Error
}

func (r *reportScheduleRepo) Update(rs *models.ReportSchedule) error {
	return r.db.Save(rs).Error
}

func (r *reportScheduleRepo) Delete(id uint) error {
	return r.db.Delete(&models.ReportSchedule{}, id).Error
}
