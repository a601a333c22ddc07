package bootstrap

import (
	"context"
	"fmt"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SeedDemoData fills the registries and catalogs with fake entries so the
// shells have something to schedule against in development.
func SeedDemoData(log *logrus.Logger, services *Services) {
	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := services.Patients.Register(ctx, &dto.RegisterPatientRequest{
			Name:       gofakeit.Name(),
			NationalID: gofakeit.Numerify("###########"),
			BirthDate:  fakeBirthDate(),
		})
		if err != nil {
			log.Warnf("Seed patient skipped: %v", err)
		}
	}

	specialties := []string{"Cardiology", "Dermatology", "Pediatrics"}
	for i, specialty := range specialties {
		_, err := services.Doctors.Register(ctx, &dto.RegisterDoctorRequest{
			Name:       "Dr. " + gofakeit.Name(),
			NationalID: gofakeit.Numerify("###########"),
			BirthDate:  fakeBirthDate(),
			License:    fmt.Sprintf("CRM-%04d", 1000+i),
			Specialty:  specialty,
		})
		if err != nil {
			log.Warnf("Seed doctor skipped: %v", err)
		}
	}

	for _, examType := range []entity.ExamType{entity.ExamBlood, entity.ExamXRay, entity.ExamUltrasound} {
		date := time.Now().AddDate(0, 0, -gofakeit.Number(1, 30)).Format(entity.DateLayout)
		_, err := services.Exams.Create(ctx, &dto.CreateExamRequest{
			Type:             string(examType),
			PrescriptionDate: date,
			PerformedDate:    date,
			Result:           gofakeit.Sentence(4),
			Cost:             decimal.NewFromInt(int64(gofakeit.Number(50, 400))),
		})
		if err != nil {
			log.Warnf("Seed exam skipped: %v", err)
		}
	}

	medications := []string{"Amoxicillin", "Ibuprofen", "Losartan", "Omeprazole"}
	for _, name := range medications {
		_, err := services.Medications.Create(ctx, &dto.CreateMedicationRequest{
			Name:         name,
			Dosage:       fmt.Sprintf("%dmg", gofakeit.Number(1, 10)*50),
			Instructions: fmt.Sprintf("1 tablet every %d hours", gofakeit.Number(4, 12)),
			Price:        decimal.NewFromInt(int64(gofakeit.Number(5, 120))),
		})
		if err != nil {
			log.Warnf("Seed medication skipped: %v", err)
		}
	}

	log.Info("Demo data seeded")
}

func fakeBirthDate() string {
	return gofakeit.DateRange(
		time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
	).Format(entity.DateLayout)
}
