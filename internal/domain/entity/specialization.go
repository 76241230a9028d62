package entity

// Service is an offering listed under the selected specialty. Catalog services
// must belong to the specialty; custom ones are free text.
type Service struct {
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

// Specialization is a single primary specialty plus the services offered
// under it.
type Specialization struct {
	SelectedSpecialty string    `json:"selected_specialty" validate:"required"`
	Services          []Service `json:"services" validate:"min=1"`
}

func (s Specialization) Clone() Specialization {
	c := s
	c.Services = make([]Service, len(s.Services))
	copy(c.Services, s.Services)
	return c
}

// HasService reports whether a service with the given name is listed.
func (s Specialization) HasService(name string) bool {
	for _, svc := range s.Services {
		if svc.Name == name {
			return true
		}
	}
	return false
}
