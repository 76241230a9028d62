package repository

import (
	"doctor-registration/internal/domain/entity"

	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(db *gorm.DB, submission *entity.SubmittedRegistration) error
	FindByID(db *gorm.DB, id string) (*entity.SubmittedRegistration, error)
	FindAll(db *gorm.DB) ([]entity.SubmittedRegistration, error)
}
