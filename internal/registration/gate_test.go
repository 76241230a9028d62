package registration

import (
	"context"
	"errors"
	"testing"

	"doctor-registration/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_NotReady(t *testing.T) {
	transport := &fakeTransport{}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Transport: transport})
	require.NoError(t, w.Update(PersonalPatch{FullName: Ptr("Jane Doe"), Bio: Ptr("bio")}))

	id, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Empty(t, id)
	assert.Equal(t, 0, transport.Calls())
	assert.Equal(t, StatusOpen, w.Status())
}

func TestSubmit_EachSectionGates(t *testing.T) {
	clearing := map[Section]Patch{
		SectionPersonal:       PersonalPatch{Bio: Ptr("")},
		SectionContact:        ContactPatch{Email: Ptr("")},
		SectionEducation:      EducationPatch{LicenseNumber: Ptr("")},
		SectionSpecialization: SpecializationPatch{Services: &[]entity.Service{}},
		SectionAvailability:   AvailabilityPatch{Schedule: &entity.Schedule{}},
		SectionCharges:        ChargesPatch{ClinicVisit: Ptr("")},
	}

	for section, p := range clearing {
		t.Run(string(section), func(t *testing.T) {
			transport := &fakeTransport{}
			w := newTestWizard(t, DefaultPolicy(), Dependencies{Transport: transport})
			fillAll(t, w)
			require.True(t, w.IsReady())

			require.NoError(t, w.Update(p))
			assert.False(t, w.IsSectionComplete(section))

			_, err := w.Submit(context.Background())
			assert.ErrorIs(t, err, ErrNotReady)
			assert.Equal(t, 0, transport.Calls())
		})
	}
}

func TestSubmit_PassesRecordToTransport(t *testing.T) {
	var got entity.Registration
	var gotID entity.SubmissionID
	transport := &fakeTransport{SubmitFunc: func(_ context.Context, id entity.SubmissionID, rec entity.Registration) error {
		gotID, got = id, rec
		return nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Transport: transport})
	fillAll(t, w)

	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, w.Record(), got)
}

func TestSubmit_FailureReenablesSubmit(t *testing.T) {
	boom := errors.New("connection refused")
	fail := true
	transport := &fakeTransport{SubmitFunc: func(context.Context, entity.SubmissionID, entity.Registration) error {
		if fail {
			return boom
		}
		return nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Transport: transport})
	fillAll(t, w)

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StatusOpen, w.Status())
	assert.Empty(t, w.SubmissionID())

	// the record stays editable after a failure
	require.NoError(t, w.Update(EducationPatch{University: Ptr("AIIMS")}))

	fail = false
	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 2, transport.Calls())
}

func TestSubmit_AlreadySubmitted(t *testing.T) {
	transport := &fakeTransport{}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Transport: transport})
	fillAll(t, w)

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, transport.Calls())

	assert.ErrorIs(t, w.Update(PersonalPatch{FullName: Ptr("John")}), ErrAlreadySubmitted)
	assert.Equal(t, "Jane Doe", w.Record().Personal.FullName)
}

func TestSubmit_InProgress(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	transport := &fakeTransport{SubmitFunc: func(context.Context, entity.SubmissionID, entity.Registration) error {
		close(started)
		<-release
		return nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Transport: transport})
	fillAll(t, w)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background())
		done <- err
	}()
	<-started

	assert.Equal(t, StatusSubmitting, w.Status())
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	assert.ErrorIs(t, w.Update(PersonalPatch{FullName: Ptr("John")}), ErrSubmissionInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusSubmitted, w.Status())
	assert.Equal(t, 1, transport.Calls())
}
