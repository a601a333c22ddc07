package usecase

import (
	"context"
	"strings"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/domain/repository"
	"clinic-scheduling/pkg/natid"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*entity.Patient, error)
	List(ctx context.Context) []*entity.Patient
	GetByIDKey(ctx context.Context, rawID string) (*entity.Patient, error)
	Update(ctx context.Context, rawID string, req *dto.UpdatePatientRequest) (*entity.Patient, error)
	Remove(ctx context.Context, rawID string) error
}

type patientUsecase struct {
	log      *logrus.Logger
	patients repository.PatientRegistry
	now      func() time.Time
}

func NewPatientUsecase(log *logrus.Logger, patients repository.PatientRegistry) PatientUsecase {
	return &patientUsecase{log: log, patients: patients, now: time.Now}
}

func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*entity.Patient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidField("name", "must not be empty")
	}

	if !natid.IsValid(req.NationalID) {
		return nil, invalidField("national ID", "must be exactly 11 digits")
	}
	idKey := natid.Format(req.NationalID)
	if u.patients.FindByIDKey(idKey) != nil {
		return nil, &ConflictError{Reason: "a patient with this national ID already exists"}
	}

	birthDate, err := time.Parse(entity.DateLayout, req.BirthDate)
	if err != nil {
		return nil, invalidField("birth date", "use the DD-MM-YYYY format")
	}
	if birthDate.After(u.now()) {
		return nil, invalidField("birth date", "must not be in the future")
	}

	patient := &entity.Patient{
		ID: uuid.New(),
		Identity: entity.PersonIdentity{
			Name:      name,
			IDKey:     idKey,
			BirthDate: birthDate,
		},
	}
	u.patients.Add(patient)

	u.log.Infof("Patient registered: id=%s, key=%s", patient.ID, idKey)
	return patient, nil
}

func (u *patientUsecase) List(ctx context.Context) []*entity.Patient {
	return u.patients.FindAll()
}

func (u *patientUsecase) GetByIDKey(ctx context.Context, rawID string) (*entity.Patient, error) {
	patient := u.patients.FindByIDKey(natid.Format(rawID))
	if patient == nil {
		return nil, notFound("patient")
	}
	return patient, nil
}

// Update applies the same validations as registration; blank fields keep the
// current value, and a changed national ID is re-checked for duplicates.
func (u *patientUsecase) Update(ctx context.Context, rawID string, req *dto.UpdatePatientRequest) (*entity.Patient, error) {
	patient := u.patients.FindByIDKey(natid.Format(rawID))
	if patient == nil {
		return nil, notFound("patient")
	}

	name := patient.Identity.Name
	if req.Name != "" {
		name = strings.TrimSpace(req.Name)
		if name == "" {
			return nil, invalidField("name", "must not be empty")
		}
	}

	idKey := patient.Identity.IDKey
	if req.NationalID != "" {
		if !natid.IsValid(req.NationalID) {
			return nil, invalidField("national ID", "must be exactly 11 digits")
		}
		idKey = natid.Format(req.NationalID)
		if idKey != patient.Identity.IDKey && u.patients.FindByIDKey(idKey) != nil {
			return nil, &ConflictError{Reason: "a patient with this national ID already exists"}
		}
	}

	birthDate := patient.Identity.BirthDate
	if req.BirthDate != "" {
		parsed, err := time.Parse(entity.DateLayout, req.BirthDate)
		if err != nil {
			return nil, invalidField("birth date", "use the DD-MM-YYYY format")
		}
		if parsed.After(u.now()) {
			return nil, invalidField("birth date", "must not be in the future")
		}
		birthDate = parsed
	}

	patient.Identity.Name = name
	patient.Identity.IDKey = idKey
	patient.Identity.BirthDate = birthDate

	u.log.Infof("Patient updated: id=%s, key=%s", patient.ID, idKey)
	return patient, nil
}

func (u *patientUsecase) Remove(ctx context.Context, rawID string) error {
	if !u.patients.Remove(natid.Format(rawID)) {
		return notFound("patient")
	}
	return nil
}
