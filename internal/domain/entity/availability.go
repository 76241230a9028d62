package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven schedule keys in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseWeekday(s string) (Weekday, bool) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, w := range Weekdays {
		if w == d {
			return d, true
		}
	}
	return "", false
}

// Label returns the capitalized day name, e.g. "Monday".
func (d Weekday) Label() string {
	return cases.Title(language.English).String(string(d))
}

// TimeRange is a start/end pair in HH:MM. Both are empty when unset.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (t TimeRange) IsZero() bool {
	return t.Start == "" && t.End == ""
}

// DaySchedule describes one weekday. A day that is not working has empty
// hours and no break or online slots.
type DaySchedule struct {
	IsWorking          bool        `json:"is_working"`
	WorkHours          TimeRange   `json:"work_hours"`
	BreakTimes         []TimeRange `json:"break_times"`
	OnlineConsultTimes []TimeRange `json:"online_consult_times"`
}

// DayOff returns the cleared schedule of a non-working day.
func DayOff() DaySchedule {
	return DaySchedule{
		BreakTimes:         []TimeRange{},
		OnlineConsultTimes: []TimeRange{},
	}
}

func (d DaySchedule) Clone() DaySchedule {
	c := d
	c.BreakTimes = cloneRanges(d.BreakTimes)
	c.OnlineConsultTimes = cloneRanges(d.OnlineConsultTimes)
	return c
}

// Schedule maps every weekday to its DaySchedule.
type Schedule map[Weekday]DaySchedule

func NewSchedule() Schedule {
	s := make(Schedule, len(Weekdays))
	for _, d := range Weekdays {
		s[d] = DayOff()
	}
	return s
}

func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for d, day := range s {
		out[d] = day.Clone()
	}
	return out
}

// WorkingDays returns the working weekdays in display order.
func (s Schedule) WorkingDays() []Weekday {
	var days []Weekday
	for _, d := range Weekdays {
		if s[d].IsWorking {
			days = append(days, d)
		}
	}
	return days
}

// Availability holds the weekly schedule, optionally tied to one clinic.
type Availability struct {
	SelectedClinicID string   `json:"selected_clinic_id,omitempty"`
	Schedule         Schedule `json:"schedule" validate:"has_working_day"`
}

func (a Availability) Clone() Availability {
	c := a
	c.Schedule = a.Schedule.Clone()
	return c
}

func cloneRanges(r []TimeRange) []TimeRange {
	out := make([]TimeRange, len(r))
	copy(out, r)
	return out
}
