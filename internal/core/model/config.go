package model

import "time"

// WorkSchedule defines the multipliers used to extrapolate an hourly wage.
type WorkSchedule struct {
	HoursPerDay   float64
	DaysPerWeek   float64
	WeeksPerMonth float64
}

// DefaultWorkSchedule returns the 8h day, 5 day week and 4.33 week month.
func DefaultWorkSchedule() WorkSchedule {
	return WorkSchedule{
		HoursPerDay:   8,
		DaysPerWeek:   5,
		WeeksPerMonth: 4.33,
	}
}

// HoursPerWeek returns the hours worked in one week.
func (schedule WorkSchedule) HoursPerWeek() float64 {
	return schedule.HoursPerDay * schedule.DaysPerWeek
}

// HoursPerMonth returns the rounded monthly hours shown next to the monthly projection.
func (schedule WorkSchedule) HoursPerMonth() int {
	return int(schedule.HoursPerWeek() * schedule.WeeksPerMonth)
}

// StopwatchConfig contains runtime settings for the stopwatch state machine.
type StopwatchConfig struct {
	RefreshInterval time.Duration
}
