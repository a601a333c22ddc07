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

type DoctorUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*entity.Doctor, error)
	List(ctx context.Context) []*entity.Doctor
	GetByLicense(ctx context.Context, license string) (*entity.Doctor, error)
	Update(ctx context.Context, license string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	Remove(ctx context.Context, license string) error
}

type doctorUsecase struct {
	log     *logrus.Logger
	doctors repository.DoctorRegistry
	now     func() time.Time
}

func NewDoctorUsecase(log *logrus.Logger, doctors repository.DoctorRegistry) DoctorUsecase {
	return &doctorUsecase{log: log, doctors: doctors, now: time.Now}
}

func (u *doctorUsecase) Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*entity.Doctor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidField("name", "must not be empty")
	}

	if !natid.IsValid(req.NationalID) {
		return nil, invalidField("national ID", "must be exactly 11 digits")
	}
	idKey := natid.Format(req.NationalID)
	if u.doctors.FindByIDKey(idKey) != nil {
		return nil, &ConflictError{Reason: "a doctor with this national ID already exists"}
	}

	birthDate, err := time.Parse(entity.DateLayout, req.BirthDate)
	if err != nil {
		return nil, invalidField("birth date", "use the DD-MM-YYYY format")
	}
	if birthDate.After(u.now()) {
		return nil, invalidField("birth date", "must not be in the future")
	}

	license := strings.TrimSpace(req.License)
	if license == "" {
		return nil, invalidField("license", "must not be empty")
	}
	if u.doctors.FindByLicense(license) != nil {
		return nil, &ConflictError{Reason: "a doctor with this license already exists"}
	}

	specialty := strings.TrimSpace(req.Specialty)
	if specialty == "" {
		return nil, invalidField("specialty", "must not be empty")
	}

	doctor := &entity.Doctor{
		ID: uuid.New(),
		Identity: entity.PersonIdentity{
			Name:      name,
			IDKey:     idKey,
			BirthDate: birthDate,
		},
		License:   license,
		Specialty: specialty,
	}
	u.doctors.Add(doctor)

	u.log.Infof("Doctor registered: id=%s, license=%s", doctor.ID, license)
	return doctor, nil
}

func (u *doctorUsecase) List(ctx context.Context) []*entity.Doctor {
	return u.doctors.FindAll()
}

func (u *doctorUsecase) GetByLicense(ctx context.Context, license string) (*entity.Doctor, error) {
	doctor := u.doctors.FindByLicense(license)
	if doctor == nil {
		return nil, notFound("doctor")
	}
	return doctor, nil
}

func (u *doctorUsecase) Update(ctx context.Context, license string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	doctor := u.doctors.FindByLicense(license)
	if doctor == nil {
		return nil, notFound("doctor")
	}

	name := doctor.Identity.Name
	if req.Name != "" {
		name = strings.TrimSpace(req.Name)
		if name == "" {
			return nil, invalidField("name", "must not be empty")
		}
	}

	idKey := doctor.Identity.IDKey
	if req.NationalID != "" {
		if !natid.IsValid(req.NationalID) {
			return nil, invalidField("national ID", "must be exactly 11 digits")
		}
		idKey = natid.Format(req.NationalID)
		if idKey != doctor.Identity.IDKey && u.doctors.FindByIDKey(idKey) != nil {
			return nil, &ConflictError{Reason: "a doctor with this national ID already exists"}
		}
	}

	birthDate := doctor.Identity.BirthDate
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

	newLicense := doctor.License
	if req.License != "" {
		newLicense = strings.TrimSpace(req.License)
		if newLicense == "" {
			return nil, invalidField("license", "must not be empty")
		}
		if newLicense != doctor.License && u.doctors.FindByLicense(newLicense) != nil {
			return nil, &ConflictError{Reason: "a doctor with this license already exists"}
		}
	}

	specialty := doctor.Specialty
	if req.Specialty != "" {
		specialty = strings.TrimSpace(req.Specialty)
		if specialty == "" {
			return nil, invalidField("specialty", "must not be empty")
		}
	}

	doctor.Identity.Name = name
	doctor.Identity.IDKey = idKey
	doctor.Identity.BirthDate = birthDate
	doctor.License = newLicense
	doctor.Specialty = specialty

	u.log.Infof("Doctor updated: id=%s, license=%s", doctor.ID, newLicense)
	return doctor, nil
}

func (u *doctorUsecase) Remove(ctx context.Context, license string) error {
	if !u.doctors.Remove(license) {
		return notFound("doctor")
	}
	return nil
}
