package registration

import (
	"doctor-registration/internal/domain/entity"

	"github.com/google/uuid"
)

// AddClinic appends a clinic and returns it with its assigned id. Under the
// single primary policy a second primary clinic is rejected with
// ErrPrimaryClinicExists and the list is left unchanged.
func (w *Wizard) AddClinic(c entity.Clinic) (entity.Clinic, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Kind == "" {
		c.Kind = entity.ClinicKindSecondary
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if c.Kind == entity.ClinicKindPrimary {
		if _, ok := w.store.record.Contact.PrimaryClinic(); ok {
			return entity.Clinic{}, ErrPrimaryClinicExists
		}
	}
	clinics := append(entity.CloneClinics(w.store.record.Contact.Clinics), c)
	if err := w.updateLocked(ContactPatch{Clinics: &clinics}); err != nil {
		return entity.Clinic{}, err
	}
	return c, nil
}

// UpdateClinic replaces the clinic with the same id.
func (w *Wizard) UpdateClinic(c entity.Clinic) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, i := w.store.record.Contact.FindClinic(c.ID)
	if i < 0 {
		return ErrClinicNotFound
	}
	if c.Kind == "" {
		c.Kind = entity.ClinicKindSecondary
	}
	return w.replaceClinicLocked(i, c)
}

// RemoveClinic deletes a clinic. An availability selection pointing at it is
// cleared by the rules.
func (w *Wizard) RemoveClinic(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	current := w.store.record.Contact.Clinics
	_, i := w.store.record.Contact.FindClinic(id)
	if i < 0 {
		return ErrClinicNotFound
	}
	clinics := make([]entity.Clinic, 0, len(current)-1)
	clinics = append(clinics, current[:i]...)
	clinics = append(clinics, current[i+1:]...)
	return w.updateLocked(ContactPatch{Clinics: &clinics})
}

// SetPrimaryClinic promotes a clinic to primary and demotes the previous one.
func (w *Wizard) SetPrimaryClinic(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, i := w.store.record.Contact.FindClinic(id); i < 0 {
		return ErrClinicNotFound
	}
	clinics := entity.CloneClinics(w.store.record.Contact.Clinics)
	for i := range clinics {
		if clinics[i].ID == id {
			clinics[i].Kind = entity.ClinicKindPrimary
		} else {
			clinics[i].Kind = entity.ClinicKindSecondary
		}
	}
	return w.updateLocked(ContactPatch{Clinics: &clinics})
}
