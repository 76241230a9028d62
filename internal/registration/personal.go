package registration

import (
	"strings"

	"doctor-registration/internal/domain/entity"
)

// AttachmentField names a file slot on the registration.
type AttachmentField string

const (
	AttachmentResume          AttachmentField = "resume"
	AttachmentProfilePicture  AttachmentField = "profile_picture"
	AttachmentLicenseDocument AttachmentField = "license_document"
)

// AddLanguage adds a spoken language. Blank and already listed languages are
// ignored.
func (w *Wizard) AddLanguage(language string) error {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	current := w.store.record.Personal.Languages
	for _, l := range current {
		if l == language {
			return nil
		}
	}
	languages := append(append([]string{}, current...), language)
	return w.updateLocked(PersonalPatch{Languages: &languages})
}

func (w *Wizard) RemoveLanguage(language string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	languages := make([]string, 0, len(w.store.record.Personal.Languages))
	for _, l := range w.store.record.Personal.Languages {
		if l != language {
			languages = append(languages, l)
		}
	}
	return w.updateLocked(PersonalPatch{Languages: &languages})
}

// AddAward appends a trimmed award. Blank input is ignored.
func (w *Wizard) AddAward(award string) error {
	award = strings.TrimSpace(award)
	if award == "" {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	awards := append(append([]string{}, w.store.record.Personal.Awards...), award)
	return w.updateLocked(PersonalPatch{Awards: &awards})
}

func (w *Wizard) RemoveAward(index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	current := w.store.record.Personal.Awards
	if index < 0 || index >= len(current) {
		return ErrIndexOutOfRange
	}
	awards := make([]string, 0, len(current)-1)
	awards = append(awards, current[:index]...)
	awards = append(awards, current[index+1:]...)
	return w.updateLocked(PersonalPatch{Awards: &awards})
}

// SetAttachment stores or, with a nil attachment, clears a file handle.
func (w *Wizard) SetAttachment(field AttachmentField, a *entity.Attachment) error {
	var p Patch
	switch field {
	case AttachmentResume:
		p = PersonalPatch{Resume: &a}
	case AttachmentProfilePicture:
		p = PersonalPatch{ProfilePicture: &a}
	case AttachmentLicenseDocument:
		p = EducationPatch{LicenseDocument: &a}
	default:
		return ErrUnknownAttachment
	}
	return w.Update(p)
}
