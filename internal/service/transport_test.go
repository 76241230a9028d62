package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePublisher struct {
	PublishFunc func(subject string, data []byte) error
}

var _ Publisher = (*fakePublisher)(nil)

func (f *fakePublisher) Publish(subject string, data []byte) error {
	return f.PublishFunc(subject, data)
}

func sampleRegistration() entity.Registration {
	rec := entity.NewRegistration("INR")
	rec.Personal.FullName = "Jane Doe"
	rec.Contact.Email = "jane@example.com"
	rec.Education.LicenseNumber = "MCI-12345"
	rec.Specialization.SelectedSpecialty = "Cardiology"
	rec.Charges.ClinicVisit = "500"
	return rec
}

func TestLogTransport_Submit(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	transport := NewLogTransport(log)

	require.NoError(t, transport.Submit(context.Background(), "sub_01TEST", sampleRegistration()))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "sub_01TEST", entry.Data["submission_id"])
	assert.Contains(t, entry.Data["registration"], "Jane Doe")
}

func TestNATSTransport_Submit(t *testing.T) {
	var subject string
	var event dto.RegistrationSubmittedEvent
	publisher := &fakePublisher{PublishFunc: func(s string, data []byte) error {
		subject = s
		return json.Unmarshal(data, &event)
	}}

	transport := NewNATSTransport(publisher, testLogger())
	require.NoError(t, transport.Submit(context.Background(), "sub_01TEST", sampleRegistration()))

	assert.Equal(t, SubjectRegistrationSubmitted, subject)
	assert.Equal(t, "sub_01TEST", event.SubmissionID)
	assert.Equal(t, "MCI-12345", event.LicenseNumber)
	assert.Equal(t, "Cardiology", event.Registration.Specialization.SelectedSpecialty)
	assert.False(t, event.SubmittedAt.IsZero())
}

func TestNATSTransport_PublishError(t *testing.T) {
	boom := errors.New("nats: connection closed")
	publisher := &fakePublisher{PublishFunc: func(string, []byte) error { return boom }}

	err := NewNATSTransport(publisher, testLogger()).Submit(context.Background(), "sub_01TEST", sampleRegistration())
	assert.ErrorIs(t, err, boom)
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_submitted_registrations_license"}

	assert.True(t, isDuplicateKeyError(dup, "license"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", dup), "LICENSE"))
	assert.False(t, isDuplicateKeyError(dup, "email"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "license"}, "license"))
	assert.False(t, isDuplicateKeyError(errors.New("boom"), "license"))
}

type fakeSubmissionRepository struct {
	CreateFunc func(db *gorm.DB, submission *entity.SubmittedRegistration) error
}

var _ repository.SubmissionRepository = (*fakeSubmissionRepository)(nil)

func (f *fakeSubmissionRepository) Create(db *gorm.DB, submission *entity.SubmittedRegistration) error {
	return f.CreateFunc(db, submission)
}

func (f *fakeSubmissionRepository) FindByID(*gorm.DB, string) (*entity.SubmittedRegistration, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepository) FindAll(*gorm.DB) ([]entity.SubmittedRegistration, error) {
	return nil, nil
}

type fakeAuditService struct {
	LogSubmissionFunc func(ctx context.Context, tx *gorm.DB, submission *entity.SubmittedRegistration) error
}

var _ AuditService = (*fakeAuditService)(nil)

func (f *fakeAuditService) LogSubmission(ctx context.Context, tx *gorm.DB, submission *entity.SubmittedRegistration) error {
	return f.LogSubmissionFunc(ctx, tx, submission)
}

func TestPostgresTransport_Write(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	submission := &entity.SubmittedRegistration{ID: "sub_1", LicenseNumber: "MCI-12345"}
	created := 0
	repo := &fakeSubmissionRepository{CreateFunc: func(*gorm.DB, *entity.SubmittedRegistration) error {
		created++
		return nil
	}}
	audited := 0
	audit := &fakeAuditService{LogSubmissionFunc: func(context.Context, *gorm.DB, *entity.SubmittedRegistration) error {
		audited++
		return nil
	}}

	transport := NewPostgresTransport(nil, log, repo, audit)
	require.NoError(t, transport.write(context.Background(), &gorm.DB{}, submission))
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, audited)
}

func TestPostgresTransport_WriteAuditFailureAborts(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	errAudit := errors.New("audit_logs: relation does not exist")
	repo := &fakeSubmissionRepository{CreateFunc: func(*gorm.DB, *entity.SubmittedRegistration) error { return nil }}
	audit := &fakeAuditService{LogSubmissionFunc: func(context.Context, *gorm.DB, *entity.SubmittedRegistration) error {
		return errAudit
	}}

	transport := NewPostgresTransport(nil, log, repo, audit)
	err := transport.write(context.Background(), &gorm.DB{}, &entity.SubmittedRegistration{ID: "sub_1"})
	assert.ErrorIs(t, err, errAudit)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestPostgresTransport_WriteDuplicateLicense(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	repo := &fakeSubmissionRepository{CreateFunc: func(*gorm.DB, *entity.SubmittedRegistration) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_submitted_registrations_license"}
	}}
	audit := &fakeAuditService{LogSubmissionFunc: func(context.Context, *gorm.DB, *entity.SubmittedRegistration) error {
		t.Fatal("audit log written for a rejected submission")
		return nil
	}}

	transport := NewPostgresTransport(nil, log, repo, audit)
	err := transport.write(context.Background(), &gorm.DB{}, &entity.SubmittedRegistration{ID: "sub_1"})
	assert.ErrorIs(t, err, ErrLicenseAlreadySubmitted)
}
