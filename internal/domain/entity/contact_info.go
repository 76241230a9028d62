package entity

// ClinicKind tags a clinic as the main practice location or an additional one.
type ClinicKind string

const (
	ClinicKindPrimary   ClinicKind = "primary"
	ClinicKindSecondary ClinicKind = "secondary"
)

func (k ClinicKind) Valid() bool {
	return k == ClinicKindPrimary || k == ClinicKindSecondary
}

// Clinic is a practice location. Address is either typed in or derived from
// MapLink by an address lookup.
type Clinic struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	MapLink      string     `json:"map_link,omitempty"`
	OfficeNumber string     `json:"office_number,omitempty"`
	Kind         ClinicKind `json:"kind"`
}

// ContactInfo holds how patients reach the practitioner.
type ContactInfo struct {
	Email       string   `json:"email" validate:"required"`
	PhoneNumber string   `json:"phone_number" validate:"required"`
	Clinics     []Clinic `json:"clinics" validate:"min=1"`
}

func (c ContactInfo) Clone() ContactInfo {
	out := c
	out.Clinics = CloneClinics(c.Clinics)
	return out
}

// FindClinic returns the clinic with the given id and its index, or -1.
func (c ContactInfo) FindClinic(id string) (Clinic, int) {
	for i, clinic := range c.Clinics {
		if clinic.ID == id {
			return clinic, i
		}
	}
	return Clinic{}, -1
}

// PrimaryClinic returns the clinic tagged primary, if any.
func (c ContactInfo) PrimaryClinic() (Clinic, bool) {
	for _, clinic := range c.Clinics {
		if clinic.Kind == ClinicKindPrimary {
			return clinic, true
		}
	}
	return Clinic{}, false
}

func CloneClinics(clinics []Clinic) []Clinic {
	out := make([]Clinic, len(clinics))
	copy(out, clinics)
	return out
}
