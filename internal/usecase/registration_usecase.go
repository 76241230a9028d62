package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-registration/internal/catalog"
	"doctor-registration/internal/converter"
	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/registration"

	"github.com/sirupsen/logrus"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
)

type RegistrationUsecase interface {
	CreateRegistration(ctx context.Context) (*dto.RegistrationResponse, error)
	GetRegistration(ctx context.Context, id string) (*dto.RegistrationResponse, error)
	UpdateSection(ctx context.Context, id string, patch registration.Patch) (*dto.RegistrationResponse, error)
	SetAttachment(ctx context.Context, id string, field registration.AttachmentField, attachment *entity.Attachment) (*dto.RegistrationResponse, error)

	AddClinic(ctx context.Context, id string, clinic entity.Clinic) (*dto.ClinicResponse, error)
	UpdateClinic(ctx context.Context, id string, clinic entity.Clinic) (*dto.RegistrationResponse, error)
	RemoveClinic(ctx context.Context, id, clinicID string) (*dto.RegistrationResponse, error)
	SetPrimaryClinic(ctx context.Context, id, clinicID string) (*dto.RegistrationResponse, error)
	ResolveClinicAddress(ctx context.Context, id, clinicID, mapLink string) (*dto.AddressResponse, error)

	SetWorkingDay(ctx context.Context, id string, day entity.Weekday, working bool) (*dto.RegistrationResponse, error)
	SetWorkHours(ctx context.Context, id string, day entity.Weekday, hours entity.TimeRange) (*dto.RegistrationResponse, error)
	AddBreak(ctx context.Context, id string, day entity.Weekday) (*dto.RegistrationResponse, error)
	RemoveBreak(ctx context.Context, id string, day entity.Weekday, index int) (*dto.RegistrationResponse, error)
	AddOnlineSlot(ctx context.Context, id string, day entity.Weekday) (*dto.RegistrationResponse, error)
	RemoveOnlineSlot(ctx context.Context, id string, day entity.Weekday, index int) (*dto.RegistrationResponse, error)
	UpdateBreak(ctx context.Context, id string, day entity.Weekday, index int, r entity.TimeRange) (*dto.RegistrationResponse, error)
	UpdateOnlineSlot(ctx context.Context, id string, day entity.Weekday, index int, r entity.TimeRange) (*dto.RegistrationResponse, error)
	CopySchedule(ctx context.Context, id string, source entity.Weekday, template registration.CopyTemplate) (*dto.RegistrationResponse, error)

	ToggleService(ctx context.Context, id, name string) (*dto.RegistrationResponse, error)
	AddCustomService(ctx context.Context, id, name string) (*dto.RegistrationResponse, error)
	TogglePaymentMethod(ctx context.Context, id, method string) (*dto.RegistrationResponse, error)

	SendMobileCode(ctx context.Context, id string) error
	VerifyMobileCode(ctx context.Context, id, code string) (*dto.RegistrationResponse, error)

	NextStep(ctx context.Context, id string) (*dto.RegistrationResponse, error)
	PreviousStep(ctx context.Context, id string) (*dto.RegistrationResponse, error)
	GoToStep(ctx context.Context, id string, step int) (*dto.RegistrationResponse, error)

	Submit(ctx context.Context, id string) (*dto.SubmitResponse, error)

	Catalog() *catalog.Catalog
	StartJanitor(ctx context.Context, interval time.Duration)
}

type registrationUsecase struct {
	log      *logrus.Logger
	checker  *registration.Checker
	catalog  *catalog.Catalog
	policy   registration.Policy
	deps     registration.Dependencies
	sessions *sessionRegistry
}

func NewRegistrationUsecase(
	log *logrus.Logger,
	checker *registration.Checker,
	catalog *catalog.Catalog,
	policy registration.Policy,
	deps registration.Dependencies,
	sessionTTL time.Duration,
) RegistrationUsecase {
	return &registrationUsecase{
		log:      log,
		checker:  checker,
		catalog:  catalog,
		policy:   policy,
		deps:     deps,
		sessions: newSessionRegistry(sessionTTL),
	}
}

func (u *registrationUsecase) CreateRegistration(ctx context.Context) (*dto.RegistrationResponse, error) {
	w := registration.NewWizard(u.log, u.checker, u.catalog, u.policy, u.deps)
	u.sessions.add(w)
	u.log.WithField("registration_id", w.ID()).Info("Registration started")
	return u.response(w), nil
}

func (u *registrationUsecase) GetRegistration(ctx context.Context, id string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(*registration.Wizard) error { return nil })
}

func (u *registrationUsecase) UpdateSection(ctx context.Context, id string, patch registration.Patch) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.Update(patch) })
}

func (u *registrationUsecase) SetAttachment(ctx context.Context, id string, field registration.AttachmentField, attachment *entity.Attachment) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.SetAttachment(field, attachment) })
}

func (u *registrationUsecase) AddClinic(ctx context.Context, id string, clinic entity.Clinic) (*dto.ClinicResponse, error) {
	w, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	added, err := w.AddClinic(clinic)
	if err != nil {
		return nil, err
	}
	return converter.ClinicToResponse(added), nil
}

func (u *registrationUsecase) UpdateClinic(ctx context.Context, id string, clinic entity.Clinic) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.UpdateClinic(clinic) })
}

func (u *registrationUsecase) RemoveClinic(ctx context.Context, id, clinicID string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.RemoveClinic(clinicID) })
}

func (u *registrationUsecase) SetPrimaryClinic(ctx context.Context, id, clinicID string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.SetPrimaryClinic(clinicID) })
}

func (u *registrationUsecase) ResolveClinicAddress(ctx context.Context, id, clinicID, mapLink string) (*dto.AddressResponse, error) {
	w, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	address, err := w.ResolveClinicAddress(ctx, clinicID, mapLink)
	if err != nil {
		return nil, err
	}
	return &dto.AddressResponse{ClinicID: clinicID, Address: address}, nil
}

func (u *registrationUsecase) SetWorkingDay(ctx context.Context, id string, day entity.Weekday, working bool) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.SetWorkingDay(day, working) })
}

func (u *registrationUsecase) SetWorkHours(ctx context.Context, id string, day entity.Weekday, hours entity.TimeRange) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.SetWorkHours(day, hours) })
}

func (u *registrationUsecase) AddBreak(ctx context.Context, id string, day entity.Weekday) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.AddBreak(day) })
}

func (u *registrationUsecase) RemoveBreak(ctx context.Context, id string, day entity.Weekday, index int) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.RemoveBreak(day, index) })
}

func (u *registrationUsecase) AddOnlineSlot(ctx context.Context, id string, day entity.Weekday) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.AddOnlineSlot(day) })
}

func (u *registrationUsecase) RemoveOnlineSlot(ctx context.Context, id string, day entity.Weekday, index int) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.RemoveOnlineSlot(day, index) })
}

func (u *registrationUsecase) UpdateBreak(ctx context.Context, id string, day entity.Weekday, index int, r entity.TimeRange) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.UpdateBreak(day, index, r) })
}

func (u *registrationUsecase) UpdateOnlineSlot(ctx context.Context, id string, day entity.Weekday, index int, r entity.TimeRange) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.UpdateOnlineSlot(day, index, r) })
}

func (u *registrationUsecase) CopySchedule(ctx context.Context, id string, source entity.Weekday, template registration.CopyTemplate) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.CopySchedule(source, template) })
}

func (u *registrationUsecase) ToggleService(ctx context.Context, id, name string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.ToggleService(name) })
}

func (u *registrationUsecase) AddCustomService(ctx context.Context, id, name string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.AddCustomService(name) })
}

func (u *registrationUsecase) TogglePaymentMethod(ctx context.Context, id, method string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.TogglePaymentMethod(method) })
}

func (u *registrationUsecase) SendMobileCode(ctx context.Context, id string) error {
	w, err := u.sessions.get(id)
	if err != nil {
		return err
	}
	return w.RequestMobileCode(ctx)
}

func (u *registrationUsecase) VerifyMobileCode(ctx context.Context, id, code string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.VerifyMobileCode(ctx, code) })
}

func (u *registrationUsecase) NextStep(ctx context.Context, id string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error {
		_, err := w.Next()
		return err
	})
}

func (u *registrationUsecase) PreviousStep(ctx context.Context, id string) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error {
		_, err := w.Previous()
		return err
	})
}

func (u *registrationUsecase) GoToStep(ctx context.Context, id string, step int) (*dto.RegistrationResponse, error) {
	return u.mutate(id, func(w *registration.Wizard) error { return w.GoToStep(step) })
}

func (u *registrationUsecase) Submit(ctx context.Context, id string) (*dto.SubmitResponse, error) {
	w, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	submissionID, err := w.Submit(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		SubmissionID: submissionID.String(),
		Status:       string(registration.StatusSubmitted),
	}, nil
}

func (u *registrationUsecase) Catalog() *catalog.Catalog {
	return u.catalog
}

// StartJanitor drops idle sessions every interval until ctx is done.
func (u *registrationUsecase) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := u.sessions.sweep(); n > 0 {
					u.log.Infof("Dropped %d idle registration sessions", n)
				}
			}
		}
	}()
}

func (u *registrationUsecase) mutate(id string, fn func(w *registration.Wizard) error) (*dto.RegistrationResponse, error) {
	w, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	return u.response(w), nil
}

func (u *registrationUsecase) response(w *registration.Wizard) *dto.RegistrationResponse {
	return converter.SnapshotToResponse(w.Snapshot(), u.catalog)
}
