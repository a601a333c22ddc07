package repository

import (
	"sync"

	"clinic-scheduling/internal/domain/entity"
	domainRepo "clinic-scheduling/internal/domain/repository"
)

type patientRegistry struct {
	mu       sync.RWMutex
	patients []*entity.Patient
}

func NewPatientRegistry() domainRepo.PatientRegistry {
	return &patientRegistry{}
}

func (r *patientRegistry) Add(patient *entity.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients = append(r.patients, patient)
}

func (r *patientRegistry) FindByIDKey(idKey string) *entity.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.Identity.IDKey == idKey {
			return p
		}
	}
	return nil
}

func (r *patientRegistry) FindAll() []*entity.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Patient, len(r.patients))
	copy(out, r.patients)
	return out
}

func (r *patientRegistry) Remove(idKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.patients {
		if p.Identity.IDKey == idKey {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return true
		}
	}
	return false
}
