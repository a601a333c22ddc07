package usecase

import (
	"io"
	"time"

	"clinic-scheduling/internal/domain/entity"
	domainRepo "clinic-scheduling/internal/domain/repository"
	"clinic-scheduling/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Fixed clock for every date rule under test: a mid-March morning.
var testNow = time.Date(2026, time.March, 16, 9, 30, 0, 0, time.UTC)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// allowAll disables the billing gate for tests that exercise other rules.
func allowAll(visits []*entity.Appointment, patient *entity.Patient) error {
	return nil
}

// schedulerFixture wires a scheduler over fresh in-memory registries with a
// known cast of patients, doctors, exams and medications.
type schedulerFixture struct {
	scheduler   *schedulerUsecase
	patients    domainRepo.PatientRegistry
	doctors     domainRepo.DoctorRegistry
	exams       domainRepo.ExamCatalog
	medications domainRepo.MedicationCatalog

	alice *entity.Patient
	bruno *entity.Patient
	house *entity.Doctor
	grey  *entity.Doctor

	bloodExam   *entity.Exam
	amoxicillin *entity.Medication
}

func newSchedulerFixture(billing BillingPolicy) *schedulerFixture {
	f := &schedulerFixture{
		patients:    repository.NewPatientRegistry(),
		doctors:     repository.NewDoctorRegistry(),
		exams:       repository.NewExamCatalog(),
		medications: repository.NewMedicationCatalog(),
	}

	birth := time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC)
	f.alice = &entity.Patient{
		ID:       uuid.New(),
		Identity: entity.PersonIdentity{Name: "Alice Souza", IDKey: "123.456.789-01", BirthDate: birth},
	}
	f.bruno = &entity.Patient{
		ID:       uuid.New(),
		Identity: entity.PersonIdentity{Name: "Bruno Lima", IDKey: "987.654.321-00", BirthDate: birth},
	}
	f.patients.Add(f.alice)
	f.patients.Add(f.bruno)

	f.house = &entity.Doctor{
		ID:        uuid.New(),
		Identity:  entity.PersonIdentity{Name: "Gregory House", IDKey: "111.222.333-44", BirthDate: birth},
		License:   "CRM-1000",
		Specialty: "Diagnostics",
	}
	f.grey = &entity.Doctor{
		ID:        uuid.New(),
		Identity:  entity.PersonIdentity{Name: "Meredith Grey", IDKey: "555.666.777-88", BirthDate: birth},
		License:   "CRM-2000",
		Specialty: "Surgery",
	}
	f.doctors.Add(f.house)
	f.doctors.Add(f.grey)

	f.bloodExam = &entity.Exam{
		ID:               uuid.New(),
		Type:             entity.ExamBlood,
		PrescriptionDate: testNow.AddDate(0, 0, -10),
		PerformedDate:    testNow.AddDate(0, 0, -9),
		Result:           "normal",
		Cost:             decimal.NewFromInt(80),
	}
	f.exams.Add(f.bloodExam)

	f.amoxicillin = &entity.Medication{
		ID:           uuid.New(),
		Name:         "Amoxicillin",
		Dosage:       "500mg",
		Instructions: "every 8 hours",
		Price:        decimal.NewFromInt(25),
	}
	f.medications.Add(f.amoxicillin)

	scheduler := NewSchedulerUsecase(testLogger(), f.patients, f.doctors, f.exams, f.medications, billing)
	f.scheduler = scheduler.(*schedulerUsecase)
	f.scheduler.now = func() time.Time { return testNow }
	return f
}
