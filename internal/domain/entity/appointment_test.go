package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, StatusScheduled.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, AppointmentStatus("PENDING").IsValid())
	assert.False(t, AppointmentStatus("agendada").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestStartAndEndMinute(t *testing.T) {
	a := &Appointment{Time: "10:00", DurationMinutes: 30}
	assert.Equal(t, 600, a.StartMinute())
	assert.Equal(t, 630, a.EndMinute())

	midnight := &Appointment{Time: "00:00", DurationMinutes: 15}
	assert.Equal(t, 0, midnight.StartMinute())
	assert.Equal(t, 15, midnight.EndMinute())
}

func TestOverlaps(t *testing.T) {
	// Booked 10:00-10:30.
	booked := &Appointment{Time: "10:00", DurationMinutes: 30}

	// Starts inside the booked interval.
	assert.True(t, booked.Overlaps(615, 30))
	// Ends inside the booked interval.
	assert.True(t, booked.Overlaps(585, 30))
	// Fully contains the booked interval.
	assert.True(t, booked.Overlaps(590, 60))
	// Identical interval.
	assert.True(t, booked.Overlaps(600, 30))

	// Back to back is not an overlap: the interval is half-open.
	assert.False(t, booked.Overlaps(630, 30))
	assert.False(t, booked.Overlaps(570, 30))
}

func TestSameDay(t *testing.T) {
	day := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	a := &Appointment{Date: day}

	assert.True(t, a.SameDay(day))
	assert.False(t, a.SameDay(day.AddDate(0, 0, 1)))
}
