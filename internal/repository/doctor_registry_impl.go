package repository

import (
	"sync"

	"clinic-scheduling/internal/domain/entity"
	domainRepo "clinic-scheduling/internal/domain/repository"
)

type doctorRegistry struct {
	mu      sync.RWMutex
	doctors []*entity.Doctor
}

func NewDoctorRegistry() domainRepo.DoctorRegistry {
	return &doctorRegistry{}
}

func (r *doctorRegistry) Add(doctor *entity.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors = append(r.doctors, doctor)
}

func (r *doctorRegistry) FindByLicense(license string) *entity.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.License == license {
			return d
		}
	}
	return nil
}

func (r *doctorRegistry) FindByIDKey(idKey string) *entity.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.Identity.IDKey == idKey {
			return d
		}
	}
	return nil
}

func (r *doctorRegistry) FindAll() []*entity.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out
}

func (r *doctorRegistry) Remove(license string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.doctors {
		if d.License == license {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return true
		}
	}
	return false
}
