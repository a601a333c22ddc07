package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BillingPolicy decides whether a patient may schedule a new visit given its
// history and payment records. Under the default policy any prior visit with
// an empty payment list blocks scheduling, regardless of whether the
// individual charges were settled. Swap the policy to change the gate without
// touching the scheduler's control flow.
type BillingPolicy func(visits []*entity.Appointment, patient *entity.Patient) error

// AnyPaymentOnFile is the default billing gate.
func AnyPaymentOnFile(visits []*entity.Appointment, patient *entity.Patient) error {
	if len(visits) > 0 && !patient.HasAnyPayment() {
		return ErrPendingPayment
	}
	return nil
}

type SchedulerUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	ListAppointments(ctx context.Context) []*entity.Appointment
	UpdateAppointment(ctx context.Context, index int, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error)
	RemoveAppointment(ctx context.Context, index int) (*entity.Appointment, error)
	AppointmentsForPatient(ctx context.Context, idKey string) []*entity.Appointment
	AppointmentsForDoctor(ctx context.Context, license string) []*entity.Appointment
}

// schedulerUsecase owns the appointment collection; registries and catalogs
// are collaborators resolved at validation time. Every operation runs under
// one mutex, the single-writer discipline required before admitting
// concurrent callers.
type schedulerUsecase struct {
	mu           sync.Mutex
	log          *logrus.Logger
	patients     repository.PatientRegistry
	doctors      repository.DoctorRegistry
	exams        repository.ExamCatalog
	medications  repository.MedicationCatalog
	billing      BillingPolicy
	appointments []*entity.Appointment
	now          func() time.Time
}

func NewSchedulerUsecase(
	log *logrus.Logger,
	patients repository.PatientRegistry,
	doctors repository.DoctorRegistry,
	exams repository.ExamCatalog,
	medications repository.MedicationCatalog,
	billing BillingPolicy,
) SchedulerUsecase {
	if billing == nil {
		billing = AnyPaymentOnFile
	}
	return &schedulerUsecase{
		log:         log,
		patients:    patients,
		doctors:     doctors,
		exams:       exams,
		medications: medications,
		billing:     billing,
		now:         time.Now,
	}
}

// CreateAppointment validates every field and cross-entity rule in order and
// commits the appointment only after all of them pass: either the
// appointment is fully registered or nothing is.
func (u *schedulerUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return nil, invalidField("date", "use the DD-MM-YYYY format")
	}
	if date.Before(u.today()) {
		return nil, invalidField("date", "must not be in the past")
	}

	if _, err := time.Parse(entity.TimeLayout, req.Time); err != nil {
		return nil, invalidField("time", "use the 24-hour HH:MM format")
	}

	if req.DurationMinutes <= 0 {
		return nil, invalidField("duration", "must be greater than zero")
	}

	status := entity.AppointmentStatus(strings.ToUpper(req.Status))
	if !status.IsValid() {
		return nil, invalidField("status", "use AGENDADA, CANCELADA or REALIZADA")
	}

	patient := u.patients.FindByIDKey(req.PatientKey)
	if patient == nil {
		return nil, notFound("patient")
	}

	doctor := u.doctors.FindByLicense(req.DoctorLicense)
	if doctor == nil {
		return nil, notFound("doctor")
	}

	candidate := &entity.Appointment{Date: date, Time: req.Time, DurationMinutes: req.DurationMinutes}
	if !u.doctorAvailable(doctor, candidate) {
		return nil, &ConflictError{Reason: "doctor is not available at the selected time"}
	}

	if u.patientBookedOn(patient, date) {
		return nil, &ConflictError{Reason: "patient already has an appointment on this day"}
	}

	prescribedExams := make([]*entity.Exam, 0, len(req.ExamTypes))
	for _, raw := range req.ExamTypes {
		examType := entity.ExamType(strings.ToUpper(raw))
		if !examType.IsValid() {
			return nil, invalidField("exam type", "use SANGUE, RAIO_X or ULTRASSOM")
		}
		exam := u.exams.FindByType(examType)
		if exam == nil {
			return nil, notFound("exam of type " + string(examType))
		}
		prescribedExams = append(prescribedExams, exam)
	}

	prescribedMedications := make([]*entity.Medication, 0, len(req.Medications))
	for _, name := range req.Medications {
		medication := u.medications.FindByName(name)
		if medication == nil {
			return nil, notFound("medication " + name)
		}
		prescribedMedications = append(prescribedMedications, medication)
	}

	if req.Charge.IsNegative() {
		return nil, invalidField("charge", "must not be negative")
	}

	if err := u.billing(u.visitsForPatient(patient.Identity.IDKey), patient); err != nil {
		u.log.Warnf("Billing gate blocked appointment for patient %s", patient.Identity.IDKey)
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		Date:            date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Status:          status,
		Patient:         patient,
		Doctor:          doctor,
		Exams:           prescribedExams,
		Medications:     prescribedMedications,
		Charge:          req.Charge,
	}
	u.appointments = append(u.appointments, appointment)

	u.log.Infof("Appointment created: id=%s, date=%s %s, patient=%s, doctor=%s",
		appointment.ID, req.Date, req.Time, patient.Identity.IDKey, doctor.License)
	return appointment, nil
}

// ListAppointments returns the schedule in creation order. The position of
// each entry is the ordinal index used by update and removal; it is stable
// only until a removal shifts it.
func (u *schedulerUsecase) ListAppointments(ctx context.Context) []*entity.Appointment {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*entity.Appointment, len(u.appointments))
	copy(out, u.appointments)
	return out
}

// UpdateAppointment replaces the provided fields after re-running the same
// per-field validation as creation. Cross-entity rules (doctor availability,
// billing gate) are intentionally not re-checked; see the design notes.
func (u *schedulerUsecase) UpdateAppointment(ctx context.Context, index int, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if index < 0 || index >= len(u.appointments) {
		return nil, notFound("appointment")
	}
	appointment := u.appointments[index]

	// Validate every provided field before touching the appointment so a
	// late failure cannot leave it half-updated.
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(entity.DateLayout, req.Date)
		if err != nil {
			return nil, invalidField("date", "use the DD-MM-YYYY format")
		}
		date = parsed
	}
	if req.Time != "" {
		if _, err := time.Parse(entity.TimeLayout, req.Time); err != nil {
			return nil, invalidField("time", "use the 24-hour HH:MM format")
		}
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return nil, invalidField("duration", "must be greater than zero")
	}
	var status entity.AppointmentStatus
	if req.Status != "" {
		status = entity.AppointmentStatus(strings.ToUpper(req.Status))
		if !status.IsValid() {
			return nil, invalidField("status", "use AGENDADA, CANCELADA or REALIZADA")
		}
	}
	if req.Charge != nil && req.Charge.IsNegative() {
		return nil, invalidField("charge", "must not be negative")
	}

	if req.Date != "" {
		appointment.Date = date
	}
	if req.Time != "" {
		appointment.Time = req.Time
	}
	if req.DurationMinutes != nil {
		appointment.DurationMinutes = *req.DurationMinutes
	}
	if req.Status != "" {
		appointment.Status = status
	}
	if req.Charge != nil {
		appointment.Charge = *req.Charge
	}

	u.log.Infof("Appointment updated: id=%s, index=%d", appointment.ID, index)
	return appointment, nil
}

// RemoveAppointment deletes the entry at the given ordinal index and returns
// it. Visit histories are computed views over this collection, so they stay
// consistent without any retraction step.
func (u *schedulerUsecase) RemoveAppointment(ctx context.Context, index int) (*entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if index < 0 || index >= len(u.appointments) {
		return nil, notFound("appointment")
	}
	removed := u.appointments[index]
	u.appointments = append(u.appointments[:index], u.appointments[index+1:]...)

	u.log.Infof("Appointment removed: id=%s, patient=%s", removed.ID, removed.Patient.Identity.IDKey)
	return removed, nil
}

// AppointmentsForPatient is the patient's visit history, computed from the
// authoritative collection.
func (u *schedulerUsecase) AppointmentsForPatient(ctx context.Context, idKey string) []*entity.Appointment {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.visitsForPatient(idKey)
}

// WithPatientVisits runs fn with the patient's visit history while holding
// the schedule lock. The payment ledger uses it so reads and writes of a
// patient's payment records are serialized with the billing gate, which
// inspects the same records during CreateAppointment.
func (u *schedulerUsecase) WithPatientVisits(ctx context.Context, idKey string, fn func(visits []*entity.Appointment)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(u.visitsForPatient(idKey))
}

// AppointmentsForDoctor is the doctor's visit history.
func (u *schedulerUsecase) AppointmentsForDoctor(ctx context.Context, license string) []*entity.Appointment {
	u.mu.Lock()
	defer u.mu.Unlock()
	var visits []*entity.Appointment
	for _, a := range u.appointments {
		if a.Doctor != nil && a.Doctor.License == license {
			visits = append(visits, a)
		}
	}
	return visits
}

func (u *schedulerUsecase) visitsForPatient(idKey string) []*entity.Appointment {
	var visits []*entity.Appointment
	for _, a := range u.appointments {
		if a.Patient != nil && a.Patient.Identity.IDKey == idKey {
			visits = append(visits, a)
		}
	}
	return visits
}

// doctorAvailable scans the doctor's appointments on the candidate day and
// applies the half-open interval overlap test.
func (u *schedulerUsecase) doctorAvailable(doctor *entity.Doctor, candidate *entity.Appointment) bool {
	start := candidate.StartMinute()
	for _, a := range u.appointments {
		if a.Doctor == nil || a.Doctor.License != doctor.License || !a.SameDay(candidate.Date) {
			continue
		}
		if a.Overlaps(start, candidate.DurationMinutes) {
			return false
		}
	}
	return true
}

// patientBookedOn reports whether the patient already has an appointment of
// any status on the given day.
func (u *schedulerUsecase) patientBookedOn(patient *entity.Patient, date time.Time) bool {
	for _, a := range u.appointments {
		if a.Patient != nil && a.Patient.Identity.IDKey == patient.Identity.IDKey && a.SameDay(date) {
			return true
		}
	}
	return false
}

func (u *schedulerUsecase) today() time.Time {
	now := u.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
