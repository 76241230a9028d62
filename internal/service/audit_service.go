package service

import (
	"context"

	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogSubmission(ctx context.Context, tx *gorm.DB, submission *entity.SubmittedRegistration) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogSubmission records an accepted registration inside the caller's transaction
func (s *auditService) LogSubmission(ctx context.Context, tx *gorm.DB, submission *entity.SubmittedRegistration) error {
	metadata := entity.JSON{
		"entity":         "submitted_registration",
		"entity_id":      submission.ID,
		"full_name":      submission.FullName,
		"license_number": submission.LicenseNumber,
		"specialty":      submission.Specialty,
	}

	auditLog := &entity.AuditLog{
		SubmissionID: submission.ID,
		Action:       entity.AuditActionRegistrationSubmit,
		Metadata:     metadata,
	}

	if err := s.auditRepo.Create(tx.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
