package registration

import (
	"strings"

	"doctor-registration/internal/domain/entity"
	"doctor-registration/pkg/money"
)

// WorkingDaysSummary renders the working days for the review step.
func WorkingDaysSummary(s entity.Schedule) string {
	days := s.WorkingDays()
	switch len(days) {
	case 0:
		return "No working days set"
	case len(entity.Weekdays):
		return "All days"
	}
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Label()
	}
	return strings.Join(labels, ", ")
}

type ScheduleCounts struct {
	WorkingDays int
	Breaks      int
	OnlineSlots int
}

// CountSchedule totals working days and the break and online slots on them.
func CountSchedule(s entity.Schedule) ScheduleCounts {
	var c ScheduleCounts
	for _, d := range s.WorkingDays() {
		c.WorkingDays++
		c.Breaks += len(s[d].BreakTimes)
		c.OnlineSlots += len(s[d].OnlineConsultTimes)
	}
	return c
}

// FormattedPrices returns the display form of every fee that is set.
func FormattedPrices(c entity.Charges) map[entity.PriceKind]string {
	out := make(map[entity.PriceKind]string)
	for _, kind := range []entity.PriceKind{entity.PriceClinicVisit, entity.PriceOnlineConsultation, entity.PriceHomeVisit} {
		if v := c.Price(kind); v != "" {
			out[kind] = money.Format(v, c.Currency)
		}
	}
	return out
}
