package console

import (
	"context"
	"strconv"
	"strings"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/pkg/natid"

	"github.com/shopspring/decimal"
)

func (c *Console) appointmentMenu() bool {
	for {
		c.printf("\n--- Appointments ---\n")
		c.printf("1. Schedule appointment\n")
		c.printf("2. List appointments\n")
		c.printf("3. Update appointment\n")
		c.printf("4. Cancel appointment\n")
		c.printf("5. Visits for a patient\n")
		c.printf("6. Visits for a doctor\n")
		c.printf("7. Back\n")

		choice, ok := c.promptInt("Select an option: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			if !c.scheduleAppointment() {
				return false
			}
		case 2:
			c.listAppointments()
		case 3:
			if !c.updateAppointment() {
				return false
			}
		case 4:
			if !c.removeAppointment() {
				return false
			}
		case 5:
			if !c.patientVisits() {
				return false
			}
		case 6:
			if !c.doctorVisits() {
				return false
			}
		case 7:
			return true
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

// promptTime re-prompts until the input parses as HH:MM.
func (c *Console) promptTime(prompt string) (string, bool) {
	for {
		line, ok := c.promptNonEmpty(prompt)
		if !ok {
			return "", false
		}
		if _, err := time.Parse(entity.TimeLayout, line); err != nil {
			c.printf("Invalid time format, use HH:MM.\n")
			continue
		}
		return line, true
	}
}

func (c *Console) promptStatus(prompt string) (string, bool) {
	for {
		line, ok := c.promptNonEmpty(prompt)
		if !ok {
			return "", false
		}
		// Tokens are case-insensitive on input; the core uppercases again
		// before storing.
		if !entity.AppointmentStatus(strings.ToUpper(line)).IsValid() {
			c.printf("Invalid status, use AGENDADA, CANCELADA or REALIZADA.\n")
			continue
		}
		return line, true
	}
}

// promptList collects values until the user enters a blank line.
func (c *Console) promptList(prompt string) ([]string, bool) {
	var values []string
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return nil, false
		}
		if line == "" {
			return values, true
		}
		values = append(values, line)
	}
}

func (c *Console) scheduleAppointment() bool {
	date, ok := c.promptDate("Date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	hour, ok := c.promptTime("Time (HH:MM): ")
	if !ok {
		return false
	}
	duration, ok := c.promptInt("Duration in minutes: ")
	if !ok {
		return false
	}
	status, ok := c.promptStatus("Status (AGENDADA/CANCELADA/REALIZADA): ")
	if !ok {
		return false
	}
	patientKey, ok := c.promptNonEmpty("Patient national ID: ")
	if !ok {
		return false
	}
	doctorLicense, ok := c.promptNonEmpty("Doctor license: ")
	if !ok {
		return false
	}
	c.printf("Prescribe exams by type (SANGUE/RAIO_X/ULTRASSOM), blank to stop.\n")
	examTypes, ok := c.promptList("Exam type: ")
	if !ok {
		return false
	}
	c.printf("Prescribe medications by name, blank to stop.\n")
	medications, ok := c.promptList("Medication name: ")
	if !ok {
		return false
	}
	charge, ok := c.promptDecimal("Visit charge: ")
	if !ok {
		return false
	}

	appointment, err := c.scheduler.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		Date:            date,
		Time:            hour,
		DurationMinutes: duration,
		Status:          status,
		PatientKey:      natid.Format(patientKey),
		DoctorLicense:   doctorLicense,
		ExamTypes:       examTypes,
		Medications:     medications,
		Charge:          charge,
	})
	if err != nil {
		c.printf("Could not schedule appointment: %v\n", err)
		return true
	}
	c.printf("Appointment scheduled for %s at %s with Dr. %s.\n",
		appointment.Date.Format(entity.DateLayout), appointment.Time, appointment.Doctor.Identity.Name)
	return true
}

func (c *Console) printAppointments(appointments []*entity.Appointment) {
	for i, a := range appointments {
		c.printf("%d. %s %s (%d min) | %s | patient %s | Dr. %s | charge %s\n",
			i, a.Date.Format(entity.DateLayout), a.Time, a.DurationMinutes, a.Status,
			a.Patient.Identity.Name, a.Doctor.Identity.Name, a.Charge.StringFixed(2))
		for _, e := range a.Exams {
			c.printf("     exam: %s (%s)\n", e.Type, e.Result)
		}
		for _, m := range a.Medications {
			c.printf("     medication: %s %s\n", m.Name, m.Dosage)
		}
	}
}

func (c *Console) listAppointments() {
	appointments := c.scheduler.ListAppointments(context.Background())
	if len(appointments) == 0 {
		c.printf("No appointments scheduled.\n")
		return
	}
	c.printAppointments(appointments)
}

func (c *Console) updateAppointment() bool {
	index, ok := c.promptInt("Appointment number: ")
	if !ok {
		return false
	}
	c.printf("Leave a field blank to keep the current value.\n")

	date, ok := c.readLine("Date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	hour, ok := c.readLine("Time (HH:MM): ")
	if !ok {
		return false
	}
	durationRaw, ok := c.readLine("Duration in minutes: ")
	if !ok {
		return false
	}
	status, ok := c.readLine("Status (AGENDADA/CANCELADA/REALIZADA): ")
	if !ok {
		return false
	}
	chargeRaw, ok := c.readLine("Visit charge: ")
	if !ok {
		return false
	}

	req := &dto.UpdateAppointmentRequest{Date: date, Time: hour, Status: status}
	if durationRaw != "" {
		duration, err := strconv.Atoi(durationRaw)
		if err != nil {
			c.printf("Invalid duration, enter a number.\n")
			return true
		}
		req.DurationMinutes = &duration
	}
	if chargeRaw != "" {
		charge, err := decimal.NewFromString(chargeRaw)
		if err != nil {
			c.printf("Invalid charge, enter a number.\n")
			return true
		}
		req.Charge = &charge
	}

	updated, err := c.scheduler.UpdateAppointment(context.Background(), index, req)
	if err != nil {
		c.printf("Could not update appointment: %v\n", err)
		return true
	}
	c.printf("Appointment updated: %s at %s, status %s.\n",
		updated.Date.Format(entity.DateLayout), updated.Time, updated.Status)
	return true
}

func (c *Console) removeAppointment() bool {
	index, ok := c.promptInt("Appointment number: ")
	if !ok {
		return false
	}
	removed, err := c.scheduler.RemoveAppointment(context.Background(), index)
	if err != nil {
		c.printf("Could not remove appointment: %v\n", err)
		return true
	}
	c.printf("Removed appointment on %s at %s.\n", removed.Date.Format(entity.DateLayout), removed.Time)
	return true
}

func (c *Console) patientVisits() bool {
	idKey, ok := c.promptNonEmpty("Patient national ID: ")
	if !ok {
		return false
	}
	visits := c.scheduler.AppointmentsForPatient(context.Background(), natid.Format(idKey))
	if len(visits) == 0 {
		c.printf("No visits for this patient.\n")
		return true
	}
	c.printAppointments(visits)
	return true
}

func (c *Console) doctorVisits() bool {
	license, ok := c.promptNonEmpty("Doctor license: ")
	if !ok {
		return false
	}
	visits := c.scheduler.AppointmentsForDoctor(context.Background(), license)
	if len(visits) == 0 {
		c.printf("No visits for this doctor.\n")
		return true
	}
	c.printAppointments(visits)
	return true
}
