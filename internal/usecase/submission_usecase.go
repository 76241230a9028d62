package usecase

import (
	"context"
	"errors"

	"doctor-registration/internal/converter"
	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
)

// SubmissionUsecase reads registrations stored by the postgres transport.
type SubmissionUsecase interface {
	GetAllSubmissions(ctx context.Context) (*dto.SubmissionListResponse, error)
	GetSubmission(ctx context.Context, id string) (*dto.SubmissionResponse, error)
}

type submissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	submissionRepo repository.SubmissionRepository,
) SubmissionUsecase {
	return &submissionUsecase{
		db:             db,
		log:            log,
		submissionRepo: submissionRepo,
	}
}

func (u *submissionUsecase) GetAllSubmissions(ctx context.Context) (*dto.SubmissionListResponse, error) {
	submissions, err := u.submissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all submissions: %+v", err)
		return nil, err
	}

	return &dto.SubmissionListResponse{
		Submissions: converter.SubmissionsToResponses(submissions),
		Total:       len(submissions),
	}, nil
}

func (u *submissionUsecase) GetSubmission(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	submission, err := u.submissionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find submission: %+v", err)
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	return converter.SubmissionToResponse(submission), nil
}
