package registration

import (
	"time"

	"doctor-registration/internal/catalog"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/pkg/money"
)

// Defaults seeded by the schedule rules and helpers.
var (
	DefaultWorkHours  = entity.TimeRange{Start: "09:00", End: "17:00"}
	DefaultBreak      = entity.TimeRange{Start: "12:00", End: "13:00"}
	DefaultOnlineSlot = entity.TimeRange{Start: "18:00", End: "19:00"}
)

const timeOfDayLayout = "15:04"

type rules struct {
	catalog *catalog.Catalog
	policy  Policy
}

// check rejects patches that would break a record invariant. It runs before
// the merge so a rejected patch leaves the record untouched.
func (r *rules) check(current *entity.Registration, p Patch) error {
	switch p := p.(type) {
	case ContactPatch:
		if p.Clinics != nil {
			return checkClinics(*p.Clinics)
		}
	case SpecializationPatch:
		return r.checkSpecialization(current, p)
	case AvailabilityPatch:
		if p.SelectedClinicID != nil && *p.SelectedClinicID != "" {
			if _, i := current.Contact.FindClinic(*p.SelectedClinicID); i < 0 {
				return ErrClinicNotFound
			}
		}
		if p.Schedule != nil {
			return checkSchedule(*p.Schedule)
		}
	case ChargesPatch:
		return r.checkCharges(p)
	}
	return nil
}

func checkClinics(clinics []entity.Clinic) error {
	primaries := 0
	seen := make(map[string]struct{}, len(clinics))
	for _, c := range clinics {
		if c.Kind != "" && !c.Kind.Valid() {
			return ErrInvalidClinicKind
		}
		if c.Kind == entity.ClinicKindPrimary {
			primaries++
		}
		if c.ID == "" {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			return ErrDuplicateClinicID
		}
		seen[c.ID] = struct{}{}
	}
	if primaries > 1 {
		return ErrPrimaryClinicExists
	}
	return nil
}

func (r *rules) checkSpecialization(current *entity.Registration, p SpecializationPatch) error {
	specialty := current.Specialization.SelectedSpecialty
	if p.SelectedSpecialty != nil {
		specialty = *p.SelectedSpecialty
		if specialty != "" && !r.catalog.HasSpecialty(specialty) {
			return ErrUnknownSpecialty
		}
	}
	if p.Services == nil {
		return nil
	}
	for _, svc := range *p.Services {
		if svc.Custom {
			continue
		}
		if !r.catalog.OffersService(specialty, svc.Name) {
			return ErrServiceNotOffered
		}
	}
	return nil
}

func checkSchedule(s entity.Schedule) error {
	for d, day := range s {
		if _, ok := entity.ParseWeekday(string(d)); !ok {
			return ErrUnknownWeekday
		}
		if err := checkTimes(day.WorkHours); err != nil {
			return err
		}
		for _, b := range day.BreakTimes {
			if err := checkTimes(b); err != nil {
				return err
			}
		}
		for _, o := range day.OnlineConsultTimes {
			if err := checkTimes(o); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkTimes accepts empty values so partially filled ranges can be stored.
// Once both ends are set the range must run forwards.
func checkTimes(t entity.TimeRange) error {
	for _, v := range []string{t.Start, t.End} {
		if v == "" {
			continue
		}
		if _, err := time.Parse(timeOfDayLayout, v); err != nil {
			return ErrInvalidTimeFormat
		}
	}
	if t.Start == "" || t.End == "" {
		return nil
	}
	return checkRange(t)
}

// checkRange requires both ends set and start strictly before end.
func checkRange(t entity.TimeRange) error {
	start, err := time.Parse(timeOfDayLayout, t.Start)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	end, err := time.Parse(timeOfDayLayout, t.End)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}
	return nil
}

func (r *rules) checkCharges(p ChargesPatch) error {
	for _, price := range []*string{p.ClinicVisit, p.OnlineConsultation, p.HomeVisit} {
		if price == nil || *price == "" {
			continue
		}
		if _, err := money.Parse(*price); err != nil {
			return ErrInvalidPrice
		}
	}
	if p.Currency != nil && !r.policy.allowsCurrency(*p.Currency) {
		return ErrCurrencyNotAllowed
	}
	if p.PaymentMethods != nil {
		for _, m := range *p.PaymentMethods {
			if !r.catalog.HasPaymentMethod(m) {
				return ErrUnknownPaymentMethod
			}
		}
	}
	return nil
}

// rule reacts to a merged patch by adjusting the record. Rules run once per
// update in list order and never trigger each other.
type rule struct {
	name  string
	apply func(before, after *entity.Registration, p Patch) bool
}

var crossSectionRules = []rule{
	{name: "autofill_contact_phone", apply: autofillContactPhone},
	{name: "reset_mobile_verification", apply: resetMobileVerification},
	{name: "reset_services_on_specialty_change", apply: resetServicesOnSpecialtyChange},
	{name: "normalize_working_days", apply: normalizeWorkingDays},
	{name: "drop_stale_clinic_selection", apply: dropStaleClinicSelection},
}

// run applies every rule once and returns the names of those that changed
// the record.
func (r *rules) run(before, after *entity.Registration, p Patch) []string {
	var fired []string
	for _, rl := range crossSectionRules {
		if rl.apply(before, after, p) {
			fired = append(fired, rl.name)
		}
	}
	return fired
}

func autofillContactPhone(before, after *entity.Registration, p Patch) bool {
	pp, ok := p.(PersonalPatch)
	if !ok || pp.MobileNumber == nil || *pp.MobileNumber == "" {
		return false
	}
	if before.Personal.MobileNumber == after.Personal.MobileNumber || after.Contact.PhoneNumber != "" {
		return false
	}
	after.Contact.PhoneNumber = after.Personal.MobileNumber
	return true
}

func resetMobileVerification(before, after *entity.Registration, p Patch) bool {
	pp, ok := p.(PersonalPatch)
	if !ok || pp.MobileNumber == nil || pp.MobileVerified != nil {
		return false
	}
	if before.Personal.MobileNumber == after.Personal.MobileNumber || !after.Personal.MobileVerified {
		return false
	}
	after.Personal.MobileVerified = false
	return true
}

func resetServicesOnSpecialtyChange(before, after *entity.Registration, p Patch) bool {
	sp, ok := p.(SpecializationPatch)
	if !ok || sp.SelectedSpecialty == nil || sp.Services != nil {
		return false
	}
	if before.Specialization.SelectedSpecialty == after.Specialization.SelectedSpecialty {
		return false
	}
	after.Specialization.Services = []entity.Service{}
	return true
}

func normalizeWorkingDays(before, after *entity.Registration, p Patch) bool {
	ap, ok := p.(AvailabilityPatch)
	if !ok || ap.Schedule == nil {
		return false
	}
	changed := false
	for _, d := range entity.Weekdays {
		day := after.Availability.Schedule[d]
		switch {
		case !day.IsWorking:
			if !day.WorkHours.IsZero() || len(day.BreakTimes) > 0 || len(day.OnlineConsultTimes) > 0 {
				after.Availability.Schedule[d] = entity.DayOff()
				changed = true
			}
		case !before.Availability.Schedule[d].IsWorking && day.WorkHours.IsZero():
			day.WorkHours = DefaultWorkHours
			after.Availability.Schedule[d] = day
			changed = true
		}
	}
	return changed
}

func dropStaleClinicSelection(_, after *entity.Registration, p Patch) bool {
	cp, ok := p.(ContactPatch)
	if !ok || cp.Clinics == nil || after.Availability.SelectedClinicID == "" {
		return false
	}
	if _, i := after.Contact.FindClinic(after.Availability.SelectedClinicID); i >= 0 {
		return false
	}
	after.Availability.SelectedClinicID = ""
	return true
}
