package registration

import (
	"doctor-registration/internal/domain/entity"
	"doctor-registration/pkg/validator"

	playground "github.com/go-playground/validator/v10"
)

// Checker decides whether each section holds its mandatory fields. It never
// fails: missing or empty values simply make a section incomplete.
type Checker struct {
	validator *validator.CustomValidator
	policy    Policy
}

func NewChecker(v *validator.CustomValidator, policy Policy) (*Checker, error) {
	if err := v.RegisterRule("has_working_day", hasWorkingDay); err != nil {
		return nil, err
	}
	return &Checker{validator: v, policy: policy}, nil
}

func hasWorkingDay(fl playground.FieldLevel) bool {
	schedule, ok := fl.Field().Interface().(entity.Schedule)
	if !ok {
		return false
	}
	return len(schedule.WorkingDays()) > 0
}

// MissingFields lists the mandatory fields of a section that are still empty,
// by their JSON names.
func (c *Checker) MissingFields(rec entity.Registration, s Section) []string {
	var target interface{}
	switch s {
	case SectionPersonal:
		target = rec.Personal
	case SectionContact:
		target = rec.Contact
	case SectionEducation:
		target = rec.Education
	case SectionSpecialization:
		target = rec.Specialization
	case SectionAvailability:
		target = rec.Availability
	case SectionCharges:
		target = rec.Charges
	default:
		return []string{string(s)}
	}

	var missing []string
	if err := c.validator.Validate(target); err != nil {
		missing = c.validator.MissingFields(err)
		if len(missing) == 0 {
			missing = []string{string(s)}
		}
	}

	switch s {
	case SectionPersonal:
		if c.policy.RequireMobileVerification && !rec.Personal.MobileVerified {
			missing = append(missing, "mobile_verified")
		}
	case SectionAvailability:
		id := rec.Availability.SelectedClinicID
		if id != "" {
			if _, i := rec.Contact.FindClinic(id); i < 0 {
				missing = append(missing, "selected_clinic_id")
			}
		} else if c.policy.RequireClinicSelection {
			missing = append(missing, "selected_clinic_id")
		}
	}
	return missing
}

func (c *Checker) IsComplete(rec entity.Registration, s Section) bool {
	return len(c.MissingFields(rec, s)) == 0
}

// IsReady reports whether every section is complete.
func (c *Checker) IsReady(rec entity.Registration) bool {
	for _, s := range Sections {
		if !c.IsComplete(rec, s) {
			return false
		}
	}
	return true
}
