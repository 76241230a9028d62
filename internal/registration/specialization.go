package registration

import (
	"strings"

	"doctor-registration/internal/domain/entity"
)

// SelectSpecialty sets the primary specialty. Picking a different one clears
// the service list.
func (w *Wizard) SelectSpecialty(name string) error {
	return w.Update(SpecializationPatch{SelectedSpecialty: &name})
}

// ToggleService adds a catalog service of the selected specialty, or removes
// it when already listed.
func (w *Wizard) ToggleService(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	spec := w.store.record.Specialization
	if spec.HasService(name) {
		services := withoutService(spec.Services, name)
		return w.updateLocked(SpecializationPatch{Services: &services})
	}
	if !w.catalog.OffersService(spec.SelectedSpecialty, name) {
		return ErrServiceNotOffered
	}
	services := append(cloneServices(spec.Services), entity.Service{Name: name})
	return w.updateLocked(SpecializationPatch{Services: &services})
}

// AddCustomService lists a free-text service. Blank and duplicate names are
// ignored.
func (w *Wizard) AddCustomService(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	spec := w.store.record.Specialization
	if spec.HasService(name) {
		return nil
	}
	services := append(cloneServices(spec.Services), entity.Service{Name: name, Custom: true})
	return w.updateLocked(SpecializationPatch{Services: &services})
}

func (w *Wizard) RemoveService(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	services := withoutService(w.store.record.Specialization.Services, name)
	return w.updateLocked(SpecializationPatch{Services: &services})
}

func cloneServices(s []entity.Service) []entity.Service {
	out := make([]entity.Service, len(s))
	copy(out, s)
	return out
}

func withoutService(s []entity.Service, name string) []entity.Service {
	out := make([]entity.Service, 0, len(s))
	for _, svc := range s {
		if svc.Name != name {
			out = append(out, svc)
		}
	}
	return out
}
