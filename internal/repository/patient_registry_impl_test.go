package repository

import (
	"testing"
	"time"

	"clinic-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatient(name, idKey string) *entity.Patient {
	return &entity.Patient{
		ID: uuid.New(),
		Identity: entity.PersonIdentity{
			Name:      name,
			IDKey:     idKey,
			BirthDate: time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestPatientRegistry(t *testing.T) {
	registry := NewPatientRegistry()

	alice := newPatient("Alice", "123.456.789-01")
	bruno := newPatient("Bruno", "987.654.321-00")
	registry.Add(alice)
	registry.Add(bruno)

	assert.Same(t, alice, registry.FindByIDKey("123.456.789-01"))
	assert.Nil(t, registry.FindByIDKey("000.000.000-00"))

	all := registry.FindAll()
	require.Len(t, all, 2)
	assert.Same(t, alice, all[0])
	assert.Same(t, bruno, all[1])

	// The listing is a copy; mutating it does not touch the registry.
	all[0] = nil
	assert.Same(t, alice, registry.FindAll()[0])

	assert.True(t, registry.Remove("123.456.789-01"))
	assert.False(t, registry.Remove("123.456.789-01"))
	assert.Len(t, registry.FindAll(), 1)
}

func TestExamCatalogOrdinalAccess(t *testing.T) {
	catalog := NewExamCatalog()

	blood := &entity.Exam{ID: uuid.New(), Type: entity.ExamBlood}
	xray := &entity.Exam{ID: uuid.New(), Type: entity.ExamXRay}
	catalog.Add(blood)
	catalog.Add(xray)

	assert.Same(t, blood, catalog.Get(0))
	assert.Nil(t, catalog.Get(2))
	assert.Nil(t, catalog.Get(-1))

	// FindByType returns the first matching entry, shared by reference.
	catalog.Add(&entity.Exam{ID: uuid.New(), Type: entity.ExamBlood})
	assert.Same(t, blood, catalog.FindByType(entity.ExamBlood))
	assert.Nil(t, catalog.FindByType(entity.ExamUltrasound))

	// Removal shifts later entries down one ordinal.
	assert.True(t, catalog.RemoveAt(0))
	assert.Same(t, xray, catalog.Get(0))
	assert.False(t, catalog.RemoveAt(5))
}
