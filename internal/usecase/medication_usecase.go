package usecase

import (
	"context"
	"strings"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MedicationUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicationRequest) (*entity.Medication, error)
	List(ctx context.Context) []*entity.Medication
	Update(ctx context.Context, index int, req *dto.UpdateMedicationRequest) (*entity.Medication, error)
	Remove(ctx context.Context, index int) error
}

type medicationUsecase struct {
	log         *logrus.Logger
	medications repository.MedicationCatalog
}

func NewMedicationUsecase(log *logrus.Logger, medications repository.MedicationCatalog) MedicationUsecase {
	return &medicationUsecase{log: log, medications: medications}
}

func (u *medicationUsecase) Create(ctx context.Context, req *dto.CreateMedicationRequest) (*entity.Medication, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidField("name", "must not be empty")
	}
	dosage := strings.TrimSpace(req.Dosage)
	if dosage == "" {
		return nil, invalidField("dosage", "must not be empty")
	}
	instructions := strings.TrimSpace(req.Instructions)
	if instructions == "" {
		return nil, invalidField("instructions", "must not be empty")
	}
	if req.Price.IsNegative() {
		return nil, invalidField("price", "must not be negative")
	}

	medication := &entity.Medication{
		ID:           uuid.New(),
		Name:         name,
		Dosage:       dosage,
		Instructions: instructions,
		Price:        req.Price,
	}
	u.medications.Add(medication)

	u.log.Infof("Medication created: id=%s, name=%s", medication.ID, name)
	return medication, nil
}

func (u *medicationUsecase) List(ctx context.Context) []*entity.Medication {
	return u.medications.FindAll()
}

func (u *medicationUsecase) Update(ctx context.Context, index int, req *dto.UpdateMedicationRequest) (*entity.Medication, error) {
	medication := u.medications.Get(index)
	if medication == nil {
		return nil, notFound("medication")
	}

	name := medication.Name
	if req.Name != "" {
		name = strings.TrimSpace(req.Name)
		if name == "" {
			return nil, invalidField("name", "must not be empty")
		}
	}
	dosage := medication.Dosage
	if req.Dosage != "" {
		dosage = strings.TrimSpace(req.Dosage)
		if dosage == "" {
			return nil, invalidField("dosage", "must not be empty")
		}
	}
	instructions := medication.Instructions
	if req.Instructions != "" {
		instructions = strings.TrimSpace(req.Instructions)
		if instructions == "" {
			return nil, invalidField("instructions", "must not be empty")
		}
	}
	price := medication.Price
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, invalidField("price", "must not be negative")
		}
		price = *req.Price
	}

	medication.Name = name
	medication.Dosage = dosage
	medication.Instructions = instructions
	medication.Price = price

	u.log.Infof("Medication updated: id=%s, index=%d", medication.ID, index)
	return medication, nil
}

func (u *medicationUsecase) Remove(ctx context.Context, index int) error {
	if !u.medications.RemoveAt(index) {
		return notFound("medication")
	}
	return nil
}
