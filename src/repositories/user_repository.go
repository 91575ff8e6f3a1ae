package repositories

import (
	"tracker/src/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByName(name string) (*models.User, error)
	Create(u *models.User) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByName(name string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("name = ? AND active = ?", name, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}
