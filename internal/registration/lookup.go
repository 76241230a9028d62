package registration

import (
	"context"
	"fmt"

	"doctor-registration/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// AddressUnavailable is written to a clinic address when its map link cannot
// be resolved.
const AddressUnavailable = "Address could not be found for this map link"

// requestTracker numbers lookups per field so only the latest one may write
// its result. Callers hold the wizard lock.
type requestTracker struct {
	seq     map[string]uint64
	subject map[string]string
}

func newRequestTracker() *requestTracker {
	return &requestTracker{seq: make(map[string]uint64), subject: make(map[string]string)}
}

func (t *requestTracker) begin(key, subject string) uint64 {
	t.seq[key]++
	t.subject[key] = subject
	return t.seq[key]
}

func (t *requestTracker) isLatest(key string, seq uint64) bool {
	return t.seq[key] == seq
}

// latestSubject reports whether the newest lookup for key asked about subject.
func (t *requestTracker) latestSubject(key, subject string) bool {
	return t.subject[key] == subject
}

func addressKey(clinicID string) string {
	return "address:" + clinicID
}

const (
	mobileSendKey   = "mobile:send"
	mobileVerifyKey = "mobile:verify"
)

// ResolveClinicAddress looks up the address behind a clinic's map link and
// writes it to the clinic. An empty mapLink uses the link already stored on
// the clinic. Lookup failures write AddressUnavailable instead of an error.
// Identical in-flight lookups share one resolver call and all receive its
// result. A result overtaken by a newer lookup of a different link for the
// same clinic is dropped with ErrLookupSuperseded.
func (w *Wizard) ResolveClinicAddress(ctx context.Context, clinicID, mapLink string) (string, error) {
	w.mu.Lock()
	if err := w.editableLocked(); err != nil {
		w.mu.Unlock()
		return "", err
	}
	clinic, i := w.store.record.Contact.FindClinic(clinicID)
	if i < 0 {
		w.mu.Unlock()
		return "", ErrClinicNotFound
	}
	if mapLink == "" {
		mapLink = clinic.MapLink
	}
	if mapLink == "" {
		w.mu.Unlock()
		return "", ErrMapLinkRequired
	}
	if mapLink != clinic.MapLink {
		clinic.MapLink = mapLink
		if err := w.replaceClinicLocked(i, clinic); err != nil {
			w.mu.Unlock()
			return "", err
		}
	}
	key := addressKey(clinicID)
	seq := w.lookups.begin(key, mapLink)
	resolver := w.deps.Resolver
	w.mu.Unlock()

	v, err, shared := w.group.Do(key+"|"+mapLink, func() (interface{}, error) {
		return resolver.Resolve(ctx, mapLink)
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	entry := w.log.WithFields(logrus.Fields{"registration_id": w.id, "clinic_id": clinicID, "shared": shared})

	address := AddressUnavailable
	if err != nil {
		entry.Warnf("Failed to resolve map link: %+v", err)
	} else {
		address = v.(string)
	}

	clinic, i = w.store.record.Contact.FindClinic(clinicID)
	if i < 0 {
		return "", ErrClinicNotFound
	}
	// An older lookup of the link the newest lookup asked about is still current.
	if !w.lookups.isLatest(key, seq) && !w.lookups.latestSubject(key, mapLink) {
		entry.Debug("Dropped superseded address lookup")
		return "", ErrLookupSuperseded
	}
	if clinic.MapLink != mapLink {
		entry.Debug("Dropped address lookup for a changed map link")
		return "", ErrLookupSuperseded
	}
	clinic.Address = address
	if err := w.replaceClinicLocked(i, clinic); err != nil {
		return "", err
	}
	return address, nil
}

func (w *Wizard) replaceClinicLocked(i int, c entity.Clinic) error {
	clinics := entity.CloneClinics(w.store.record.Contact.Clinics)
	clinics[i] = c
	return w.updateLocked(ContactPatch{Clinics: &clinics})
}

// RequestMobileCode sends a verification code to the stored mobile number.
func (w *Wizard) RequestMobileCode(ctx context.Context) error {
	w.mu.Lock()
	if err := w.editableLocked(); err != nil {
		w.mu.Unlock()
		return err
	}
	mobile := w.store.record.Personal.MobileNumber
	if mobile == "" {
		w.mu.Unlock()
		return ErrMobileNumberRequired
	}
	verifier := w.deps.Verifier
	w.mu.Unlock()

	_, err, _ := w.group.Do(mobileSendKey+"|"+mobile, func() (interface{}, error) {
		return nil, verifier.SendCode(ctx, mobile)
	})
	if err != nil {
		w.log.WithField("registration_id", w.id).Warnf("Failed to send verification code: %+v", err)
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

// VerifyMobileCode checks code against the stored mobile number and records
// the outcome in the personal section. A wrong code leaves the number
// unverified and returns ErrInvalidCode. The result is dropped when a newer
// verification started or the number changed in the meantime.
func (w *Wizard) VerifyMobileCode(ctx context.Context, code string) error {
	w.mu.Lock()
	if err := w.editableLocked(); err != nil {
		w.mu.Unlock()
		return err
	}
	mobile := w.store.record.Personal.MobileNumber
	if mobile == "" {
		w.mu.Unlock()
		return ErrMobileNumberRequired
	}
	seq := w.lookups.begin(mobileVerifyKey, mobile)
	verifier := w.deps.Verifier
	w.mu.Unlock()

	ok, err := verifier.Verify(ctx, mobile, code)

	w.mu.Lock()
	defer w.mu.Unlock()
	entry := w.log.WithField("registration_id", w.id)
	if !w.lookups.isLatest(mobileVerifyKey, seq) || w.store.record.Personal.MobileNumber != mobile {
		entry.Debug("Dropped superseded mobile verification")
		return ErrLookupSuperseded
	}
	if err != nil {
		entry.Warnf("Failed to verify mobile number: %+v", err)
		if uerr := w.updateLocked(PersonalPatch{MobileVerified: Ptr(false)}); uerr != nil {
			return uerr
		}
		return fmt.Errorf("failed to verify mobile number: %w", err)
	}
	if uerr := w.updateLocked(PersonalPatch{MobileVerified: Ptr(ok)}); uerr != nil {
		return uerr
	}
	if !ok {
		return ErrInvalidCode
	}
	return nil
}
