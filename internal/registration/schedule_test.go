package registration

import (
	"testing"

	"doctor-registration/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWorkingDay(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})

	require.NoError(t, w.SetWorkingDay(entity.Monday, true))
	day := w.Record().Availability.Schedule[entity.Monday]
	assert.True(t, day.IsWorking)
	assert.Equal(t, DefaultWorkHours, day.WorkHours)
	assert.Empty(t, day.BreakTimes)
	assert.True(t, w.IsSectionComplete(SectionAvailability))

	require.NoError(t, w.AddBreak(entity.Monday))
	require.NoError(t, w.AddOnlineSlot(entity.Monday))
	require.NoError(t, w.SetWorkingDay(entity.Monday, false))

	day = w.Record().Availability.Schedule[entity.Monday]
	assert.Equal(t, entity.DayOff(), day)
	assert.False(t, w.IsSectionComplete(SectionAvailability))
}

func TestSetWorkingDay_UnknownDay(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})
	assert.ErrorIs(t, w.SetWorkingDay("funday", true), ErrUnknownWeekday)
}

func TestSetWorkHours(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})

	assert.ErrorIs(t, w.SetWorkHours(entity.Tuesday, entity.TimeRange{Start: "08:00", End: "12:00"}), ErrDayNotWorking)

	require.NoError(t, w.SetWorkingDay(entity.Tuesday, true))
	require.NoError(t, w.SetWorkHours(entity.Tuesday, entity.TimeRange{Start: "08:00", End: "12:00"}))
	assert.Equal(t, entity.TimeRange{Start: "08:00", End: "12:00"}, w.Record().Availability.Schedule[entity.Tuesday].WorkHours)

	assert.ErrorIs(t, w.SetWorkHours(entity.Tuesday, entity.TimeRange{Start: "12:00", End: "08:00"}), ErrInvalidTimeRange)
	assert.ErrorIs(t, w.SetWorkHours(entity.Tuesday, entity.TimeRange{Start: "25:00", End: "26:00"}), ErrInvalidTimeFormat)
	assert.ErrorIs(t, w.SetWorkHours(entity.Tuesday, entity.TimeRange{Start: "", End: "08:00"}), ErrInvalidTimeFormat)
}

func TestBreaks(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})
	assert.ErrorIs(t, w.AddBreak(entity.Wednesday), ErrDayNotWorking)

	require.NoError(t, w.SetWorkingDay(entity.Wednesday, true))
	require.NoError(t, w.AddBreak(entity.Wednesday))
	require.NoError(t, w.AddBreak(entity.Wednesday))
	assert.Equal(t, []entity.TimeRange{DefaultBreak, DefaultBreak}, w.Record().Availability.Schedule[entity.Wednesday].BreakTimes)

	tea := entity.TimeRange{Start: "16:00", End: "16:15"}
	require.NoError(t, w.UpdateBreak(entity.Wednesday, 1, tea))
	assert.ErrorIs(t, w.UpdateBreak(entity.Wednesday, 2, tea), ErrIndexOutOfRange)

	require.NoError(t, w.RemoveBreak(entity.Wednesday, 0))
	assert.Equal(t, []entity.TimeRange{tea}, w.Record().Availability.Schedule[entity.Wednesday].BreakTimes)
	assert.ErrorIs(t, w.RemoveBreak(entity.Wednesday, 5), ErrIndexOutOfRange)
}

func TestOnlineSlots(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})
	require.NoError(t, w.SetWorkingDay(entity.Thursday, true))
	require.NoError(t, w.AddOnlineSlot(entity.Thursday))
	assert.Equal(t, []entity.TimeRange{DefaultOnlineSlot}, w.Record().Availability.Schedule[entity.Thursday].OnlineConsultTimes)

	late := entity.TimeRange{Start: "20:00", End: "21:30"}
	require.NoError(t, w.UpdateOnlineSlot(entity.Thursday, 0, late))
	assert.ErrorIs(t, w.UpdateOnlineSlot(entity.Thursday, 0, entity.TimeRange{Start: "21:30", End: "20:00"}), ErrInvalidTimeRange)
	assert.Equal(t, []entity.TimeRange{late}, w.Record().Availability.Schedule[entity.Thursday].OnlineConsultTimes)

	require.NoError(t, w.RemoveOnlineSlot(entity.Thursday, 0))
	assert.Empty(t, w.Record().Availability.Schedule[entity.Thursday].OnlineConsultTimes)
}

func TestCopySchedule(t *testing.T) {
	tests := []struct {
		template CopyTemplate
		working  []entity.Weekday
	}{
		{CopyToAll, entity.Weekdays},
		{CopyToWeekdays, []entity.Weekday{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday}},
		{CopyToAllExceptSunday, []entity.Weekday{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday, entity.Saturday}},
	}

	for _, tt := range tests {
		t.Run(string(tt.template), func(t *testing.T) {
			w := newTestWizard(t, DefaultPolicy(), Dependencies{})
			require.NoError(t, w.SetWorkingDay(entity.Monday, true))
			require.NoError(t, w.AddBreak(entity.Monday))

			require.NoError(t, w.CopySchedule(entity.Monday, tt.template))

			schedule := w.Record().Availability.Schedule
			assert.Equal(t, tt.working, schedule.WorkingDays())
			for _, d := range tt.working {
				assert.Equal(t, schedule[entity.Monday], schedule[d], d)
			}
		})
	}
}

func TestCopySchedule_CopiesAreIndependent(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})
	require.NoError(t, w.SetWorkingDay(entity.Monday, true))
	require.NoError(t, w.AddBreak(entity.Monday))
	require.NoError(t, w.CopySchedule(entity.Monday, CopyToWeekdays))

	require.NoError(t, w.RemoveBreak(entity.Tuesday, 0))
	schedule := w.Record().Availability.Schedule
	assert.Len(t, schedule[entity.Monday].BreakTimes, 1)
	assert.Empty(t, schedule[entity.Tuesday].BreakTimes)
}

func TestCopySchedule_Errors(t *testing.T) {
	w := newTestWizard(t, DefaultPolicy(), Dependencies{})
	assert.ErrorIs(t, w.CopySchedule(entity.Monday, "fortnight"), ErrUnknownCopyTemplate)
	assert.ErrorIs(t, w.CopySchedule("funday", CopyToAll), ErrUnknownWeekday)
}

func TestWorkingDaysSummary(t *testing.T) {
	s := entity.NewSchedule()
	assert.Equal(t, "No working days set", WorkingDaysSummary(s))

	s[entity.Monday] = entity.DaySchedule{IsWorking: true}
	s[entity.Wednesday] = entity.DaySchedule{IsWorking: true}
	assert.Equal(t, "Monday, Wednesday", WorkingDaysSummary(s))

	for _, d := range entity.Weekdays {
		s[d] = entity.DaySchedule{IsWorking: true}
	}
	assert.Equal(t, "All days", WorkingDaysSummary(s))
}

func TestCountSchedule(t *testing.T) {
	s := entity.NewSchedule()
	s[entity.Monday] = entity.DaySchedule{
		IsWorking:          true,
		BreakTimes:         []entity.TimeRange{DefaultBreak},
		OnlineConsultTimes: []entity.TimeRange{DefaultOnlineSlot, DefaultOnlineSlot},
	}
	s[entity.Tuesday] = entity.DaySchedule{IsWorking: true, BreakTimes: []entity.TimeRange{DefaultBreak}}

	assert.Equal(t, ScheduleCounts{WorkingDays: 2, Breaks: 2, OnlineSlots: 2}, CountSchedule(s))
}

func TestFormattedPrices(t *testing.T) {
	c := entity.Charges{ClinicVisit: "150000", HomeVisit: "", Currency: "INR"}
	assert.Equal(t, map[entity.PriceKind]string{entity.PriceClinicVisit: "₹ 1,50,000"}, FormattedPrices(c))
}
