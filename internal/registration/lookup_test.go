package registration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"doctor-registration/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClinicAddress(t *testing.T) {
	resolver := &fakeResolver{ResolveFunc: func(_ context.Context, link string) (string, error) {
		assert.Equal(t, "https://maps.example.com/?q=Heart+Care", link)
		return "Heart Care, MG Road", nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Resolver: resolver})
	c, err := w.AddClinic(entity.Clinic{Name: "Heart Care"})
	require.NoError(t, err)

	address, err := w.ResolveClinicAddress(context.Background(), c.ID, "https://maps.example.com/?q=Heart+Care")
	require.NoError(t, err)
	assert.Equal(t, "Heart Care, MG Road", address)

	got, _ := w.Record().Contact.FindClinic(c.ID)
	assert.Equal(t, "Heart Care, MG Road", got.Address)
	assert.Equal(t, "https://maps.example.com/?q=Heart+Care", got.MapLink)
}

func TestResolveClinicAddress_FailureWritesPlaceholder(t *testing.T) {
	calls := 0
	resolver := &fakeResolver{ResolveFunc: func(context.Context, string) (string, error) {
		calls++
		return "", errors.New("no match")
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Resolver: resolver})
	c, err := w.AddClinic(entity.Clinic{Name: "Heart Care", MapLink: "https://maps.example.com/bad"})
	require.NoError(t, err)

	address, err := w.ResolveClinicAddress(context.Background(), c.ID, "")
	require.NoError(t, err)
	assert.Equal(t, AddressUnavailable, address)
	assert.Equal(t, 1, calls)

	got, _ := w.Record().Contact.FindClinic(c.ID)
	assert.Equal(t, AddressUnavailable, got.Address)
}

func TestResolveClinicAddress_Errors(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})

	_, err := w.ResolveClinicAddress(context.Background(), "missing", "https://maps.example.com/?q=x")
	assert.ErrorIs(t, err, ErrClinicNotFound)

	c, err := w.AddClinic(entity.Clinic{Name: "No link"})
	require.NoError(t, err)
	_, err = w.ResolveClinicAddress(context.Background(), c.ID, "")
	assert.ErrorIs(t, err, ErrMapLinkRequired)
}

func TestResolveClinicAddress_LatestWins(t *testing.T) {
	started := map[string]chan struct{}{"link-a": make(chan struct{}), "link-b": make(chan struct{})}
	release := map[string]chan struct{}{"link-a": make(chan struct{}), "link-b": make(chan struct{})}
	resolver := &fakeResolver{ResolveFunc: func(_ context.Context, link string) (string, error) {
		close(started[link])
		<-release[link]
		return "address of " + link, nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Resolver: resolver})
	c, err := w.AddClinic(entity.Clinic{Name: "Main"})
	require.NoError(t, err)

	type result struct {
		address string
		err     error
	}
	first := make(chan result, 1)
	go func() {
		a, err := w.ResolveClinicAddress(context.Background(), c.ID, "link-a")
		first <- result{a, err}
	}()
	<-started["link-a"]

	second := make(chan result, 1)
	go func() {
		a, err := w.ResolveClinicAddress(context.Background(), c.ID, "link-b")
		second <- result{a, err}
	}()
	<-started["link-b"]

	close(release["link-b"])
	r := <-second
	require.NoError(t, r.err)
	assert.Equal(t, "address of link-b", r.address)

	close(release["link-a"])
	r = <-first
	assert.ErrorIs(t, r.err, ErrLookupSuperseded)

	got, _ := w.Record().Contact.FindClinic(c.ID)
	assert.Equal(t, "address of link-b", got.Address)
	assert.Equal(t, "link-b", got.MapLink)
}

func TestResolveClinicAddress_SameLinkCallsBothSucceed(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	resolver := &fakeResolver{ResolveFunc: func(context.Context, string) (string, error) {
		once.Do(func() { close(started) })
		<-release
		return "Heart Care, MG Road", nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Resolver: resolver})
	c, err := w.AddClinic(entity.Clinic{Name: "Heart Care"})
	require.NoError(t, err)

	type result struct {
		address string
		err     error
	}
	results := make(chan result, 2)
	resolve := func() {
		a, err := w.ResolveClinicAddress(context.Background(), c.ID, "link-a")
		results <- result{a, err}
	}
	go resolve()
	<-started
	go resolve()
	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.lookups.seq[addressKey(c.ID)] == 2
	}, time.Second, time.Millisecond)
	close(release)

	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		assert.Equal(t, "Heart Care, MG Road", r.address)
	}

	got, _ := w.Record().Contact.FindClinic(c.ID)
	assert.Equal(t, "Heart Care, MG Road", got.Address)
}

func TestRequestMobileCode(t *testing.T) {
	var sentTo string
	verifier := &fakeVerifier{SendCodeFunc: func(_ context.Context, phone string) error {
		sentTo = phone
		return nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Verifier: verifier})

	assert.ErrorIs(t, w.RequestMobileCode(context.Background()), ErrMobileNumberRequired)

	require.NoError(t, w.Update(PersonalPatch{MobileNumber: Ptr("+15550001111")}))
	require.NoError(t, w.RequestMobileCode(context.Background()))
	assert.Equal(t, "+15550001111", sentTo)
}

func TestVerifyMobileCode(t *testing.T) {
	policy := DefaultPolicy()
	policy.RequireMobileVerification = true
	w := newTestWizard(t, policy, Dependencies{})
	require.NoError(t, w.Update(PersonalPatch{
		FullName:     Ptr("Jane Doe"),
		Bio:          Ptr("bio"),
		MobileNumber: Ptr("+15550001111"),
	}))
	require.False(t, w.IsSectionComplete(SectionPersonal))

	assert.ErrorIs(t, w.VerifyMobileCode(context.Background(), "000000"), ErrInvalidCode)
	assert.False(t, w.Record().Personal.MobileVerified)

	require.NoError(t, w.VerifyMobileCode(context.Background(), "123456"))
	assert.True(t, w.Record().Personal.MobileVerified)
	assert.True(t, w.IsSectionComplete(SectionPersonal))
}

func TestVerifyMobileCode_VerifierError(t *testing.T) {
	boom := errors.New("redis down")
	verifier := &fakeVerifier{VerifyFunc: func(context.Context, string, string) (bool, error) {
		return false, boom
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Verifier: verifier})
	require.NoError(t, w.Update(PersonalPatch{MobileNumber: Ptr("+15550001111")}))

	err := w.VerifyMobileCode(context.Background(), "123456")
	assert.ErrorIs(t, err, boom)
	assert.False(t, w.Record().Personal.MobileVerified)
}

func TestVerifyMobileCode_NumberChangedMeanwhile(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	verifier := &fakeVerifier{VerifyFunc: func(context.Context, string, string) (bool, error) {
		close(started)
		<-release
		return true, nil
	}}
	w := newTestWizard(t, DefaultPolicy(), Dependencies{Verifier: verifier})
	require.NoError(t, w.Update(PersonalPatch{MobileNumber: Ptr("+15550001111")}))

	done := make(chan error, 1)
	go func() { done <- w.VerifyMobileCode(context.Background(), "123456") }()
	<-started

	require.NoError(t, w.Update(PersonalPatch{MobileNumber: Ptr("+15550002222")}))
	close(release)

	assert.ErrorIs(t, <-done, ErrLookupSuperseded)
	assert.False(t, w.Record().Personal.MobileVerified)
}
