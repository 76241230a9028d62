package service

import (
	"context"
	"errors"
	"strings"

	"doctor-registration/internal/converter"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLicenseAlreadySubmitted = errors.New("license number already submitted")
)

// PostgresTransport stores submissions in the submitted_registrations table
// together with an audit log row, in one transaction.
type PostgresTransport struct {
	db             *gorm.DB
	log            *logrus.Logger
	submissionRepo repository.SubmissionRepository
	auditService   AuditService
}

func NewPostgresTransport(
	db *gorm.DB,
	log *logrus.Logger,
	submissionRepo repository.SubmissionRepository,
	auditService AuditService,
) *PostgresTransport {
	return &PostgresTransport{
		db:             db,
		log:            log,
		submissionRepo: submissionRepo,
		auditService:   auditService,
	}
}

func (t *PostgresTransport) Submit(ctx context.Context, id entity.SubmissionID, rec entity.Registration) error {
	submission, err := converter.RegistrationToSubmission(id, rec)
	if err != nil {
		t.log.Warnf("Failed to convert registration: %+v", err)
		return err
	}

	tx := t.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := t.write(ctx, tx, submission); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		t.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// write stores the submission and its audit row. Any error aborts the
// transaction so a submission is never committed without its audit log.
func (t *PostgresTransport) write(ctx context.Context, tx *gorm.DB, submission *entity.SubmittedRegistration) error {
	if err := t.submissionRepo.Create(tx, submission); err != nil {
		t.log.Warnf("Failed to create submission: %+v", err)
		if isDuplicateKeyError(err, "license") {
			return ErrLicenseAlreadySubmitted
		}
		return err
	}

	if err := t.auditService.LogSubmission(ctx, tx, submission); err != nil {
		t.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
