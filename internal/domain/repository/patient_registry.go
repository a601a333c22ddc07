package repository

import "clinic-scheduling/internal/domain/entity"

// PatientRegistry is the flat patient collection. Lookups are by the
// formatted national-ID key.
type PatientRegistry interface {
	Add(patient *entity.Patient)
	FindByIDKey(idKey string) *entity.Patient
	FindAll() []*entity.Patient
	Remove(idKey string) bool
}
