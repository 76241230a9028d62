package registration

import "doctor-registration/internal/domain/entity"

// Patch is a partial section record applied as a shallow merge. A nil field
// means the key is absent and the stored value is kept. Collections are
// replaced as a whole: to add one clinic, read the list, append, and pass
// the full list back.
type Patch interface {
	Section() Section
	sealed()
}

type PersonalPatch struct {
	FullName       *string
	DateOfBirth    *string
	MobileNumber   *string
	MobileVerified *bool
	Languages      *[]string
	Bio            *string
	Awards         *[]string
	Resume         **entity.Attachment
	ProfilePicture **entity.Attachment
}

type ContactPatch struct {
	Email       *string
	PhoneNumber *string
	Clinics     *[]entity.Clinic
}

type EducationPatch struct {
	HighestDegree     *string
	University        *string
	LicenseNumber     *string
	IssuingAuthority  *string
	LicenseExpiryDate *string
	LicenseDocument   **entity.Attachment
}

type SpecializationPatch struct {
	SelectedSpecialty *string
	Services          *[]entity.Service
}

type AvailabilityPatch struct {
	SelectedClinicID *string
	Schedule         *entity.Schedule
}

type ChargesPatch struct {
	ClinicVisit        *string
	OnlineConsultation *string
	HomeVisit          *string
	Currency           *string
	PaymentMethods     *[]string
}

func (PersonalPatch) Section() Section       { return SectionPersonal }
func (ContactPatch) Section() Section        { return SectionContact }
func (EducationPatch) Section() Section      { return SectionEducation }
func (SpecializationPatch) Section() Section { return SectionSpecialization }
func (AvailabilityPatch) Section() Section   { return SectionAvailability }
func (ChargesPatch) Section() Section        { return SectionCharges }

func (PersonalPatch) sealed()       {}
func (ContactPatch) sealed()        {}
func (EducationPatch) sealed()      {}
func (SpecializationPatch) sealed() {}
func (AvailabilityPatch) sealed()   {}
func (ChargesPatch) sealed()        {}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
