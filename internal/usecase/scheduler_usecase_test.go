package usecase

import (
	"context"
	"testing"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Date:            "20-03-2026",
		Time:            "10:00",
		DurationMinutes: 30,
		Status:          "AGENDADA",
		PatientKey:      "123.456.789-01",
		DoctorLicense:   "CRM-1000",
		Charge:          decimal.NewFromInt(150),
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	req := createRequest()
	req.ExamTypes = []string{"SANGUE"}
	req.Medications = []string{"Amoxicillin"}

	created, err := f.scheduler.CreateAppointment(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "20-03-2026", created.Date.Format(entity.DateLayout))
	assert.Equal(t, "10:00", created.Time)
	assert.Equal(t, 30, created.DurationMinutes)
	assert.Equal(t, entity.StatusScheduled, created.Status)
	assert.Same(t, f.alice, created.Patient)
	assert.Same(t, f.house, created.Doctor)
	assert.True(t, created.Charge.Equal(decimal.NewFromInt(150)))

	// Prescriptions attach the catalog objects themselves, not copies.
	require.Len(t, created.Exams, 1)
	assert.Same(t, f.bloodExam, created.Exams[0])
	require.Len(t, created.Medications, 1)
	assert.Same(t, f.amoxicillin, created.Medications[0])

	// The stored entry is the created one.
	listed := f.scheduler.ListAppointments(ctx)
	require.Len(t, listed, 1)
	assert.Same(t, created, listed[0])
}

func TestCreateAppointmentLowercaseTokens(t *testing.T) {
	f := newSchedulerFixture(allowAll)

	req := createRequest()
	req.Status = "agendada"
	req.ExamTypes = []string{"sangue"}

	created, err := f.scheduler.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusScheduled, created.Status)
	require.Len(t, created.Exams, 1)
	assert.Equal(t, entity.ExamBlood, created.Exams[0].Type)
}

func TestCreateAppointmentInvalidDate(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	req := createRequest()
	req.Date = "2026-03-20"

	// The same malformed input fails identically on every attempt and
	// leaves no trace.
	for i := 0; i < 2; i++ {
		_, err := f.scheduler.CreateAppointment(ctx, req)
		assert.True(t, IsValidation(err))
	}
	assert.Empty(t, f.scheduler.ListAppointments(ctx))
}

func TestCreateAppointmentPastDate(t *testing.T) {
	f := newSchedulerFixture(allowAll)

	req := createRequest()
	req.Date = "15-03-2026" // the day before the fixture clock

	_, err := f.scheduler.CreateAppointment(context.Background(), req)
	assert.True(t, IsValidation(err))
}

func TestCreateAppointmentTodayAllowed(t *testing.T) {
	f := newSchedulerFixture(allowAll)

	req := createRequest()
	req.Date = "16-03-2026"

	_, err := f.scheduler.CreateAppointment(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateAppointmentFieldValidation(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	bad := createRequest()
	bad.Time = "10h30"
	_, err := f.scheduler.CreateAppointment(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = createRequest()
	bad.DurationMinutes = 0
	_, err = f.scheduler.CreateAppointment(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = createRequest()
	bad.Status = "PENDING"
	_, err = f.scheduler.CreateAppointment(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = createRequest()
	bad.Charge = decimal.NewFromInt(-10)
	_, err = f.scheduler.CreateAppointment(ctx, bad)
	assert.True(t, IsValidation(err))

	assert.Empty(t, f.scheduler.ListAppointments(ctx))
}

func TestCreateAppointmentUnknownParticipants(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	req := createRequest()
	req.PatientKey = "000.000.000-00"
	_, err := f.scheduler.CreateAppointment(ctx, req)
	assert.True(t, IsNotFound(err))

	req = createRequest()
	req.DoctorLicense = "CRM-9999"
	_, err = f.scheduler.CreateAppointment(ctx, req)
	assert.True(t, IsNotFound(err))

	assert.Empty(t, f.scheduler.ListAppointments(ctx))
}

func TestCreateAppointmentUnknownPrescriptions(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	req := createRequest()
	req.ExamTypes = []string{"RAIO_X"} // valid token, not in the catalog
	_, err := f.scheduler.CreateAppointment(ctx, req)
	assert.True(t, IsNotFound(err))

	req = createRequest()
	req.ExamTypes = []string{"URINA"}
	_, err = f.scheduler.CreateAppointment(ctx, req)
	assert.True(t, IsValidation(err))

	req = createRequest()
	req.Medications = []string{"Dipyrone"}
	_, err = f.scheduler.CreateAppointment(ctx, req)
	assert.True(t, IsNotFound(err))

	assert.Empty(t, f.scheduler.ListAppointments(ctx))
}

func TestDoctorDoubleBooking(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	// 10:15 starts inside the booked 10:00-10:30 slot.
	overlapping := createRequest()
	overlapping.Time = "10:15"
	overlapping.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, overlapping)
	assert.True(t, IsConflict(err))

	// 10:30 is back to back with the booked slot and is free.
	adjacent := createRequest()
	adjacent.Time = "10:30"
	adjacent.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, adjacent)
	assert.NoError(t, err)
}

func TestDoctorAvailabilityScopedToDoctorAndDay(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	// Another doctor at the same time is fine.
	otherDoctor := createRequest()
	otherDoctor.DoctorLicense = "CRM-2000"
	otherDoctor.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, otherDoctor)
	assert.NoError(t, err)

	// The same doctor at the same time on another day is fine.
	otherDay := createRequest()
	otherDay.Date = "21-03-2026"
	otherDay.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, otherDay)
	assert.NoError(t, err)
}

func TestPatientOneAppointmentPerDay(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	// Same patient, same day, different doctor and a free slot.
	second := createRequest()
	second.Time = "14:00"
	second.DoctorLicense = "CRM-2000"
	_, err = f.scheduler.CreateAppointment(ctx, second)
	assert.True(t, IsConflict(err))

	// The next day is fine.
	nextDay := createRequest()
	nextDay.Date = "21-03-2026"
	_, err = f.scheduler.CreateAppointment(ctx, nextDay)
	assert.NoError(t, err)
}

func TestBillingGateBlocksSecondVisit(t *testing.T) {
	f := newSchedulerFixture(nil) // default AnyPaymentOnFile policy
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	// Alice has a visit on file and no payment record.
	nextDay := createRequest()
	nextDay.Date = "21-03-2026"
	_, err = f.scheduler.CreateAppointment(ctx, nextDay)
	assert.ErrorIs(t, err, ErrPendingPayment)

	// Bruno has no history and is unaffected.
	fresh := createRequest()
	fresh.Date = "21-03-2026"
	fresh.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, fresh)
	assert.NoError(t, err)
}

func TestBillingGateIgnoresChargeAmounts(t *testing.T) {
	f := newSchedulerFixture(nil)
	ctx := context.Background()

	// A free visit still blocks: the gate looks for payment records, not
	// for an outstanding balance.
	free := createRequest()
	free.Charge = decimal.Zero
	_, err := f.scheduler.CreateAppointment(ctx, free)
	require.NoError(t, err)

	nextDay := createRequest()
	nextDay.Date = "21-03-2026"
	_, err = f.scheduler.CreateAppointment(ctx, nextDay)
	assert.ErrorIs(t, err, ErrPendingPayment)
}

func TestBillingGateClearedByAnyPayment(t *testing.T) {
	f := newSchedulerFixture(nil)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	f.alice.AddPayment(entity.Payment{Amount: decimal.NewFromInt(150), Paid: true})

	nextDay := createRequest()
	nextDay.Date = "21-03-2026"
	_, err = f.scheduler.CreateAppointment(ctx, nextDay)
	assert.NoError(t, err)
}

func TestListAppointmentsReturnsCopy(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	listed := f.scheduler.ListAppointments(ctx)
	listed[0] = nil
	assert.NotNil(t, f.scheduler.ListAppointments(ctx)[0])
}

func TestUpdateAppointment(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	newDuration := 45
	newCharge := decimal.NewFromInt(200)
	updated, err := f.scheduler.UpdateAppointment(ctx, 0, &dto.UpdateAppointmentRequest{
		Time:            "11:00",
		DurationMinutes: &newDuration,
		Status:          "REALIZADA",
		Charge:          &newCharge,
	})
	require.NoError(t, err)

	// Blank date kept the original value.
	assert.Equal(t, "20-03-2026", updated.Date.Format(entity.DateLayout))
	assert.Equal(t, "11:00", updated.Time)
	assert.Equal(t, 45, updated.DurationMinutes)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
	assert.True(t, updated.Charge.Equal(newCharge))
}

func TestUpdateAppointmentValidatesBeforeApplying(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	// A valid date paired with an invalid status must change nothing.
	_, err = f.scheduler.UpdateAppointment(ctx, 0, &dto.UpdateAppointmentRequest{
		Date:   "25-03-2026",
		Status: "PENDING",
	})
	assert.True(t, IsValidation(err))

	current := f.scheduler.ListAppointments(ctx)[0]
	assert.Equal(t, "20-03-2026", current.Date.Format(entity.DateLayout))
	assert.Equal(t, entity.StatusScheduled, current.Status)
}

func TestUpdateAppointmentSkipsCrossEntityChecks(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.Time = "11:00"
	second.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, second)
	require.NoError(t, err)

	// Moving the second visit onto the first one's slot is accepted:
	// availability is only enforced at creation time.
	_, err = f.scheduler.UpdateAppointment(ctx, 1, &dto.UpdateAppointmentRequest{Time: "10:00"})
	assert.NoError(t, err)
}

func TestUpdateAppointmentOutOfRange(t *testing.T) {
	f := newSchedulerFixture(allowAll)

	_, err := f.scheduler.UpdateAppointment(context.Background(), 0, &dto.UpdateAppointmentRequest{})
	assert.True(t, IsNotFound(err))
}

func TestRemoveAppointment(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	first, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.Time = "11:00"
	second.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, second)
	require.NoError(t, err)

	third := createRequest()
	third.Date = "21-03-2026"
	third.PatientKey = f.bruno.Identity.IDKey
	_, err = f.scheduler.CreateAppointment(ctx, third)
	require.NoError(t, err)

	removed, err := f.scheduler.RemoveAppointment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "11:00", removed.Time)

	// The survivors keep their relative order.
	remaining := f.scheduler.ListAppointments(ctx)
	require.Len(t, remaining, 2)
	assert.Same(t, first, remaining[0])
	assert.Equal(t, "21-03-2026", remaining[1].Date.Format(entity.DateLayout))

	_, err = f.scheduler.RemoveAppointment(ctx, 5)
	assert.True(t, IsNotFound(err))
}

func TestVisitHistoriesAreComputedViews(t *testing.T) {
	f := newSchedulerFixture(allowAll)
	ctx := context.Background()

	created, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	// Each party sees the visit exactly once.
	patientVisits := f.scheduler.AppointmentsForPatient(ctx, f.alice.Identity.IDKey)
	require.Len(t, patientVisits, 1)
	assert.Same(t, created, patientVisits[0])

	doctorVisits := f.scheduler.AppointmentsForDoctor(ctx, f.house.License)
	require.Len(t, doctorVisits, 1)
	assert.Same(t, created, doctorVisits[0])

	assert.Empty(t, f.scheduler.AppointmentsForPatient(ctx, f.bruno.Identity.IDKey))
	assert.Empty(t, f.scheduler.AppointmentsForDoctor(ctx, f.grey.License))

	// Removal disappears from both views with no retraction step.
	_, err = f.scheduler.RemoveAppointment(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, f.scheduler.AppointmentsForPatient(ctx, f.alice.Identity.IDKey))
	assert.Empty(t, f.scheduler.AppointmentsForDoctor(ctx, f.house.License))
}

func TestCustomBillingPolicy(t *testing.T) {
	denied := 0
	deny := func(visits []*entity.Appointment, patient *entity.Patient) error {
		denied++
		return ErrPendingPayment
	}
	f := newSchedulerFixture(deny)

	_, err := f.scheduler.CreateAppointment(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrPendingPayment)
	assert.Equal(t, 1, denied)
}
