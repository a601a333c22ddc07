package repository

import "clinic-scheduling/internal/domain/entity"

// MedicationCatalog is the flat medication collection, looked up by exact
// name match.
type MedicationCatalog interface {
	Add(medication *entity.Medication)
	Get(index int) *entity.Medication
	FindByName(name string) *entity.Medication
	FindAll() []*entity.Medication
	RemoveAt(index int) bool
}
