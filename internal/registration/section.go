package registration

import "strings"

// Section names an independently updatable part of the registration.
type Section string

const (
	SectionPersonal       Section = "personal"
	SectionContact        Section = "contact"
	SectionEducation      Section = "education"
	SectionSpecialization Section = "specialization"
	SectionAvailability   Section = "availability"
	SectionCharges        Section = "charges"
)

// Sections lists every section in step order.
var Sections = []Section{
	SectionPersonal,
	SectionContact,
	SectionEducation,
	SectionSpecialization,
	SectionAvailability,
	SectionCharges,
}

func ParseSection(s string) (Section, error) {
	name := Section(strings.ToLower(strings.TrimSpace(s)))
	for _, sec := range Sections {
		if sec == name {
			return sec, nil
		}
	}
	return "", ErrUnknownSection
}

// Step is one page of the wizard. The review step has no section.
type Step struct {
	Number  int
	Title   string
	Section Section
}

var steps = []Step{
	{Number: 1, Title: "Personal Information", Section: SectionPersonal},
	{Number: 2, Title: "Contact Information", Section: SectionContact},
	{Number: 3, Title: "Education & Qualification", Section: SectionEducation},
	{Number: 4, Title: "Specialization", Section: SectionSpecialization},
	{Number: 5, Title: "Availability", Section: SectionAvailability},
	{Number: 6, Title: "Charges & Payment", Section: SectionCharges},
	{Number: 7, Title: "Review & Submit"},
}

// TotalSteps is the number of wizard steps including the review step.
var TotalSteps = len(steps)

// Steps returns the wizard steps in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}
