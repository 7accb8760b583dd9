package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWorkSchedule(t *testing.T) {
	schedule := DefaultWorkSchedule()

	assert.Equal(t, 40.0, schedule.HoursPerWeek())
	assert.Equal(t, 173, schedule.HoursPerMonth())
}
