package repository

import (
	"errors"

	"doctor-registration/internal/domain/entity"
	domainRepo "doctor-registration/internal/domain/repository"

	"gorm.io/gorm"
)

type submissionRepository struct{}

func NewSubmissionRepository() domainRepo.SubmissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(db *gorm.DB, submission *entity.SubmittedRegistration) error {
	return db.Create(submission).Error
}

func (r *submissionRepository) FindByID(db *gorm.DB, id string) (*entity.SubmittedRegistration, error) {
	var submission entity.SubmittedRegistration
	err := db.Where("id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAll(db *gorm.DB) ([]entity.SubmittedRegistration, error) {
	var submissions []entity.SubmittedRegistration
	err := db.Order("submitted_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
