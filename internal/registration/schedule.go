package registration

import (
	"doctor-registration/internal/domain/entity"
)

// CopyTemplate names the set of days a schedule is copied onto.
type CopyTemplate string

const (
	CopyToAll             CopyTemplate = "all"
	CopyToWeekdays        CopyTemplate = "weekdays"
	CopyToAllExceptSunday CopyTemplate = "all-except-sunday"
)

func (t CopyTemplate) targets() ([]entity.Weekday, error) {
	switch t {
	case CopyToAll:
		return entity.Weekdays, nil
	case CopyToWeekdays:
		return entity.Weekdays[:5], nil
	case CopyToAllExceptSunday:
		return entity.Weekdays[:6], nil
	}
	return nil, ErrUnknownCopyTemplate
}

// SelectClinic ties the schedule to one of the contact clinics. An empty id
// clears the selection.
func (w *Wizard) SelectClinic(id string) error {
	return w.Update(AvailabilityPatch{SelectedClinicID: &id})
}

// SetWorkingDay toggles a day. Turning it on seeds the default work hours
// and empties the break and online lists; turning it off clears the day.
func (w *Wizard) SetWorkingDay(day entity.Weekday, working bool) error {
	return w.editDay(day, func(d *entity.DaySchedule) error {
		*d = entity.DayOff()
		if working {
			d.IsWorking = true
			d.WorkHours = DefaultWorkHours
		}
		return nil
	})
}

func (w *Wizard) SetWorkHours(day entity.Weekday, hours entity.TimeRange) error {
	if err := checkRange(hours); err != nil {
		return err
	}
	return w.editDay(day, func(d *entity.DaySchedule) error {
		if !d.IsWorking {
			return ErrDayNotWorking
		}
		d.WorkHours = hours
		return nil
	})
}

// AddBreak appends a 12:00-13:00 break to a working day.
func (w *Wizard) AddBreak(day entity.Weekday) error {
	return w.editDay(day, func(d *entity.DaySchedule) error {
		if !d.IsWorking {
			return ErrDayNotWorking
		}
		d.BreakTimes = append(d.BreakTimes, DefaultBreak)
		return nil
	})
}

func (w *Wizard) UpdateBreak(day entity.Weekday, index int, r entity.TimeRange) error {
	if err := checkRange(r); err != nil {
		return err
	}
	return w.editDay(day, func(d *entity.DaySchedule) error {
		return replaceRange(d.BreakTimes, index, r)
	})
}

func (w *Wizard) RemoveBreak(day entity.Weekday, index int) error {
	return w.editDay(day, func(d *entity.DaySchedule) error {
		out, err := removeRange(d.BreakTimes, index)
		d.BreakTimes = out
		return err
	})
}

// AddOnlineSlot appends an 18:00-19:00 online consultation slot to a working
// day.
func (w *Wizard) AddOnlineSlot(day entity.Weekday) error {
	return w.editDay(day, func(d *entity.DaySchedule) error {
		if !d.IsWorking {
			return ErrDayNotWorking
		}
		d.OnlineConsultTimes = append(d.OnlineConsultTimes, DefaultOnlineSlot)
		return nil
	})
}

func (w *Wizard) UpdateOnlineSlot(day entity.Weekday, index int, r entity.TimeRange) error {
	if err := checkRange(r); err != nil {
		return err
	}
	return w.editDay(day, func(d *entity.DaySchedule) error {
		return replaceRange(d.OnlineConsultTimes, index, r)
	})
}

func (w *Wizard) RemoveOnlineSlot(day entity.Weekday, index int) error {
	return w.editDay(day, func(d *entity.DaySchedule) error {
		out, err := removeRange(d.OnlineConsultTimes, index)
		d.OnlineConsultTimes = out
		return err
	})
}

// CopySchedule copies the source day onto every day of the template except
// the source itself.
func (w *Wizard) CopySchedule(source entity.Weekday, template CopyTemplate) error {
	src, ok := entity.ParseWeekday(string(source))
	if !ok {
		return ErrUnknownWeekday
	}
	targets, err := template.targets()
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	schedule := w.store.record.Availability.Schedule.Clone()
	from := schedule[src]
	for _, d := range targets {
		if d != src {
			schedule[d] = from.Clone()
		}
	}
	return w.updateLocked(AvailabilityPatch{Schedule: &schedule})
}

// editDay applies fn to a copy of one day and writes the whole schedule back
// as a patch. Nothing is written when fn fails.
func (w *Wizard) editDay(day entity.Weekday, fn func(*entity.DaySchedule) error) error {
	d, ok := entity.ParseWeekday(string(day))
	if !ok {
		return ErrUnknownWeekday
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	schedule := w.store.record.Availability.Schedule.Clone()
	ds := schedule[d]
	if err := fn(&ds); err != nil {
		return err
	}
	schedule[d] = ds
	return w.updateLocked(AvailabilityPatch{Schedule: &schedule})
}

func replaceRange(ranges []entity.TimeRange, index int, r entity.TimeRange) error {
	if index < 0 || index >= len(ranges) {
		return ErrIndexOutOfRange
	}
	ranges[index] = r
	return nil
}

func removeRange(ranges []entity.TimeRange, index int) ([]entity.TimeRange, error) {
	if index < 0 || index >= len(ranges) {
		return ranges, ErrIndexOutOfRange
	}
	out := make([]entity.TimeRange, 0, len(ranges)-1)
	out = append(out, ranges[:index]...)
	return append(out, ranges[index+1:]...), nil
}
