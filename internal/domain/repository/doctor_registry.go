package repository

import "clinic-scheduling/internal/domain/entity"

// DoctorRegistry is the flat doctor collection. Lookups are by license
// number.
type DoctorRegistry interface {
	Add(doctor *entity.Doctor)
	FindByLicense(license string) *entity.Doctor
	FindByIDKey(idKey string) *entity.Doctor
	FindAll() []*entity.Doctor
	Remove(license string) bool
}
