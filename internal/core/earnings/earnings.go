// Package earnings derives money figures from an hourly wage and elapsed time.
package earnings

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"salarywatch/internal/core/model"
)

const secondsPerHour = 3600

// Plain decimal notation only: no hex floats, digit separators, NaN or Inf.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Projections are fixed-multiplier extrapolations of an hourly wage.
type Projections struct {
	Daily   float64
	Weekly  float64
	Monthly float64
}

// IsDecimal reports whether input, ignoring surrounding whitespace, is a
// plain decimal number.
func IsDecimal(input string) bool {
	return decimalPattern.MatchString(strings.TrimSpace(input))
}

// ParseWage parses a decimal wage. Only finite values above zero are accepted.
func ParseWage(input string) (float64, bool) {
	if !IsDecimal(input) {
		return 0, false
	}
	wage, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsInf(wage, 0) || wage <= 0 {
		return 0, false
	}
	return wage, true
}

// Current returns the money earned after elapsedSeconds at hourlyWage.
func Current(hourlyWage float64, elapsedSeconds int64) float64 {
	return hourlyWage / secondsPerHour * float64(elapsedSeconds)
}

// Project extrapolates hourlyWage with the default work schedule.
func Project(hourlyWage float64) Projections {
	return ProjectWith(model.DefaultWorkSchedule(), hourlyWage)
}

// ProjectWith extrapolates hourlyWage with the given schedule.
// The monthly figure is derived from the weekly one.
func ProjectWith(schedule model.WorkSchedule, hourlyWage float64) Projections {
	daily := hourlyWage * schedule.HoursPerDay
	weekly := daily * schedule.DaysPerWeek
	return Projections{
		Daily:   daily,
		Weekly:  weekly,
		Monthly: weekly * schedule.WeeksPerMonth,
	}
}

// FormatTime renders seconds as HH:MM:SS. Hours are not wrapped into days.
func FormatTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Formatter renders amounts as localized currency strings.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter creates a Formatter for the language tag and currency symbol.
func NewFormatter(tag language.Tag, symbol string) Formatter {
	return Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// DefaultFormatter formats US dollars for American English.
func DefaultFormatter() Formatter {
	return NewFormatter(language.AmericanEnglish, "$")
}

// Format renders amount with two decimals and locale digit grouping.
func (formatter Formatter) Format(amount float64) string {
	if formatter.printer == nil {
		formatter = DefaultFormatter()
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + formatter.symbol + formatter.printer.Sprintf("%.2f", amount)
}

// FormatCurrency renders amount as US dollars.
func FormatCurrency(amount float64) string {
	return DefaultFormatter().Format(amount)
}
