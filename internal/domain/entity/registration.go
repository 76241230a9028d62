package entity

// Registration is the root aggregate collected by the wizard. Every section
// is fully initialized by NewRegistration so readers never meet nil
// collections.
type Registration struct {
	Personal       PersonalInfo   `json:"personal"`
	Contact        ContactInfo    `json:"contact"`
	Education      Education      `json:"education"`
	Specialization Specialization `json:"specialization"`
	Availability   Availability   `json:"availability"`
	Charges        Charges        `json:"charges"`
}

// NewRegistration returns a registration with every section at its empty
// default and all seven weekdays present as days off.
func NewRegistration(currency string) Registration {
	return Registration{
		Personal: PersonalInfo{
			Languages: []string{},
			Awards:    []string{},
		},
		Contact: ContactInfo{
			Clinics: []Clinic{},
		},
		Specialization: Specialization{
			Services: []Service{},
		},
		Availability: Availability{
			Schedule: NewSchedule(),
		},
		Charges: Charges{
			Currency:       currency,
			PaymentMethods: []string{},
		},
	}
}

// Clone returns a deep copy of the registration.
func (r Registration) Clone() Registration {
	return Registration{
		Personal:       r.Personal.Clone(),
		Contact:        r.Contact.Clone(),
		Education:      r.Education.Clone(),
		Specialization: r.Specialization.Clone(),
		Availability:   r.Availability.Clone(),
		Charges:        r.Charges.Clone(),
	}
}

// Attachment is an opaque handle to an uploaded file. The contents are never
// inspected.
type Attachment struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
}

func cloneAttachment(a *Attachment) *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
