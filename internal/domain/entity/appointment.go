package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date and time-of-day textual forms used across the whole system.
const (
	DateLayout = "02-01-2006"
	TimeLayout = "15:04"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "AGENDADA"
	StatusCancelled AppointmentStatus = "CANCELADA"
	StatusCompleted AppointmentStatus = "REALIZADA"
)

// IsValid reports whether the status is one of the three enumerated tokens.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s AppointmentStatus) IsScheduled() bool { return s == StatusScheduled }
func (s AppointmentStatus) IsCancelled() bool { return s == StatusCancelled }
func (s AppointmentStatus) IsCompleted() bool { return s == StatusCompleted }

// Appointment is a scheduled visit between one patient and one doctor.
// Date carries only the calendar day (midnight UTC); Time is the validated
// HH:MM start of the visit.
type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	Date            time.Time         `json:"date"`
	Time            string            `json:"time"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	Patient         *Patient          `json:"patient"`
	Doctor          *Doctor           `json:"doctor"`
	Exams           []*Exam           `json:"exams"`
	Medications     []*Medication     `json:"medications"`
	Charge          decimal.Decimal   `json:"charge"`
}

// StartMinute returns the start of the visit in minutes from midnight.
// Time is validated on every entry path, so a malformed value cannot occur
// on a stored appointment.
func (a *Appointment) StartMinute() int {
	t, err := time.Parse(TimeLayout, a.Time)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// EndMinute returns the exclusive end of the visit in minutes from midnight.
func (a *Appointment) EndMinute() int {
	return a.StartMinute() + a.DurationMinutes
}

// SameDay reports whether the appointment falls on the given calendar day.
func (a *Appointment) SameDay(date time.Time) bool {
	return a.Date.Equal(date)
}

// Overlaps applies the half-open interval test against a candidate visit on
// the same day: [start, start+duration) conflicts when it starts before this
// appointment ends and ends after it starts.
func (a *Appointment) Overlaps(startMinute, durationMinutes int) bool {
	return startMinute < a.EndMinute() && startMinute+durationMinutes > a.StartMinute()
}
