package registration

import (
	"doctor-registration/internal/domain/entity"

	"github.com/google/uuid"
)

// Store owns one registration record and applies shallow-merge patches to
// it. It does not run rules or validators; Wizard does that around Apply.
type Store struct {
	record entity.Registration
}

func NewStore(currency string) *Store {
	return &Store{record: entity.NewRegistration(currency)}
}

// Record returns a deep copy of the stored registration.
func (s *Store) Record() entity.Registration {
	return s.record.Clone()
}

// Section returns a deep copy of one section record.
func (s *Store) Section(name Section) (interface{}, error) {
	r := s.record.Clone()
	switch name {
	case SectionPersonal:
		return r.Personal, nil
	case SectionContact:
		return r.Contact, nil
	case SectionEducation:
		return r.Education, nil
	case SectionSpecialization:
		return r.Specialization, nil
	case SectionAvailability:
		return r.Availability, nil
	case SectionCharges:
		return r.Charges, nil
	}
	return nil, ErrUnknownSection
}

// Apply merges the keys present in p into their section. Other sections are
// not touched.
func (s *Store) Apply(p Patch) {
	switch p := p.(type) {
	case PersonalPatch:
		mergePersonal(&s.record.Personal, p)
	case ContactPatch:
		mergeContact(&s.record.Contact, p)
	case EducationPatch:
		mergeEducation(&s.record.Education, p)
	case SpecializationPatch:
		mergeSpecialization(&s.record.Specialization, p)
	case AvailabilityPatch:
		mergeAvailability(&s.record.Availability, p)
	case ChargesPatch:
		mergeCharges(&s.record.Charges, p)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v == nil {
		return
	}
	out := make([]string, len(*v))
	copy(out, *v)
	*dst = out
}

func setAttachment(dst **entity.Attachment, v **entity.Attachment) {
	if v == nil {
		return
	}
	if *v == nil {
		*dst = nil
		return
	}
	a := **v
	*dst = &a
}

func mergePersonal(dst *entity.PersonalInfo, p PersonalPatch) {
	set(&dst.FullName, p.FullName)
	set(&dst.DateOfBirth, p.DateOfBirth)
	set(&dst.MobileNumber, p.MobileNumber)
	set(&dst.MobileVerified, p.MobileVerified)
	setStrings(&dst.Languages, p.Languages)
	set(&dst.Bio, p.Bio)
	setStrings(&dst.Awards, p.Awards)
	setAttachment(&dst.Resume, p.Resume)
	setAttachment(&dst.ProfilePicture, p.ProfilePicture)
}

func mergeContact(dst *entity.ContactInfo, p ContactPatch) {
	set(&dst.Email, p.Email)
	set(&dst.PhoneNumber, p.PhoneNumber)
	if p.Clinics != nil {
		clinics := entity.CloneClinics(*p.Clinics)
		for i := range clinics {
			if clinics[i].ID == "" {
				clinics[i].ID = uuid.NewString()
			}
			if clinics[i].Kind == "" {
				clinics[i].Kind = entity.ClinicKindSecondary
			}
		}
		dst.Clinics = clinics
	}
}

func mergeEducation(dst *entity.Education, p EducationPatch) {
	set(&dst.HighestDegree, p.HighestDegree)
	set(&dst.University, p.University)
	set(&dst.LicenseNumber, p.LicenseNumber)
	set(&dst.IssuingAuthority, p.IssuingAuthority)
	set(&dst.LicenseExpiryDate, p.LicenseExpiryDate)
	setAttachment(&dst.LicenseDocument, p.LicenseDocument)
}

func mergeSpecialization(dst *entity.Specialization, p SpecializationPatch) {
	set(&dst.SelectedSpecialty, p.SelectedSpecialty)
	if p.Services != nil {
		services := make([]entity.Service, len(*p.Services))
		copy(services, *p.Services)
		dst.Services = services
	}
}

// mergeAvailability replaces the schedule wholesale. Weekdays missing from
// the patch come back as days off, so all seven keys are always present.
func mergeAvailability(dst *entity.Availability, p AvailabilityPatch) {
	set(&dst.SelectedClinicID, p.SelectedClinicID)
	if p.Schedule != nil {
		schedule := entity.NewSchedule()
		for _, d := range entity.Weekdays {
			day, ok := (*p.Schedule)[d]
			if !ok {
				continue
			}
			day = day.Clone()
			if day.BreakTimes == nil {
				day.BreakTimes = []entity.TimeRange{}
			}
			if day.OnlineConsultTimes == nil {
				day.OnlineConsultTimes = []entity.TimeRange{}
			}
			schedule[d] = day
		}
		dst.Schedule = schedule
	}
}

func mergeCharges(dst *entity.Charges, p ChargesPatch) {
	set(&dst.ClinicVisit, p.ClinicVisit)
	set(&dst.OnlineConsultation, p.OnlineConsultation)
	set(&dst.HomeVisit, p.HomeVisit)
	set(&dst.Currency, p.Currency)
	setStrings(&dst.PaymentMethods, p.PaymentMethods)
}
