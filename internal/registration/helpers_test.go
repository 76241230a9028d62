package registration

import (
	"context"
	"io"
	"sync/atomic"
	"testing"

	"doctor-registration/internal/catalog"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	SubmitFunc func(ctx context.Context, id entity.SubmissionID, rec entity.Registration) error
	calls      int32
}

var _ SubmissionTransport = (*fakeTransport)(nil)

func (f *fakeTransport) Submit(ctx context.Context, id entity.SubmissionID, rec entity.Registration) error {
	atomic.AddInt32(&f.calls, 1)
	if f.SubmitFunc != nil {
		return f.SubmitFunc(ctx, id, rec)
	}
	return nil
}

func (f *fakeTransport) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

type fakeResolver struct {
	ResolveFunc func(ctx context.Context, mapLink string) (string, error)
}

var _ AddressResolver = (*fakeResolver)(nil)

func (f *fakeResolver) Resolve(ctx context.Context, mapLink string) (string, error) {
	return f.ResolveFunc(ctx, mapLink)
}

type fakeVerifier struct {
	SendCodeFunc func(ctx context.Context, phone string) error
	VerifyFunc   func(ctx context.Context, phone, code string) (bool, error)
}

var _ PhoneVerifier = (*fakeVerifier)(nil)

func (f *fakeVerifier) SendCode(ctx context.Context, phone string) error {
	if f.SendCodeFunc != nil {
		return f.SendCodeFunc(ctx, phone)
	}
	return nil
}

func (f *fakeVerifier) Verify(ctx context.Context, phone, code string) (bool, error) {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(ctx, phone, code)
	}
	return code == "123456", nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func newTestWizard(t *testing.T, policy Policy, deps Dependencies) *Wizard {
	t.Helper()
	if deps.Transport == nil {
		deps.Transport = &fakeTransport{}
	}
	if deps.Resolver == nil {
		deps.Resolver = &fakeResolver{ResolveFunc: func(context.Context, string) (string, error) {
			return "221B Baker Street", nil
		}}
	}
	if deps.Verifier == nil {
		deps.Verifier = &fakeVerifier{}
	}
	checker, err := NewChecker(validator.NewValidator(), policy)
	require.NoError(t, err)
	return NewWizard(testLogger(), checker, testCatalog(t), policy, deps)
}

func workingMonday() *entity.Schedule {
	s := entity.Schedule{
		entity.Monday: {
			IsWorking:          true,
			WorkHours:          entity.TimeRange{Start: "09:00", End: "17:00"},
			BreakTimes:         []entity.TimeRange{},
			OnlineConsultTimes: []entity.TimeRange{},
		},
	}
	return &s
}

// fillAll completes every section of w.
func fillAll(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.Update(PersonalPatch{
		FullName:     Ptr("Jane Doe"),
		Bio:          Ptr("Cardiologist with ten years of practice."),
		MobileNumber: Ptr("+15550001111"),
	}))
	require.NoError(t, w.Update(ContactPatch{Email: Ptr("jane@example.com")}))
	_, err := w.AddClinic(entity.Clinic{Name: "Heart Care", Address: "1 Main St", Kind: entity.ClinicKindPrimary})
	require.NoError(t, err)
	require.NoError(t, w.Update(EducationPatch{HighestDegree: Ptr("MD"), LicenseNumber: Ptr("MCI-12345")}))
	require.NoError(t, w.SelectSpecialty("Cardiology"))
	require.NoError(t, w.ToggleService("ECG"))
	require.NoError(t, w.Update(AvailabilityPatch{Schedule: workingMonday()}))
	require.NoError(t, w.SetPrice(entity.PriceClinicVisit, "500"))
}
