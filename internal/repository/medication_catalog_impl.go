package repository

import (
	"sync"

	"clinic-scheduling/internal/domain/entity"
	domainRepo "clinic-scheduling/internal/domain/repository"
)

type medicationCatalog struct {
	mu          sync.RWMutex
	medications []*entity.Medication
}

func NewMedicationCatalog() domainRepo.MedicationCatalog {
	return &medicationCatalog{}
}

func (c *medicationCatalog) Add(medication *entity.Medication) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.medications = append(c.medications, medication)
}

func (c *medicationCatalog) Get(index int) *entity.Medication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.medications) {
		return nil
	}
	return c.medications[index]
}

func (c *medicationCatalog) FindByName(name string) *entity.Medication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.medications {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (c *medicationCatalog) FindAll() []*entity.Medication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Medication, len(c.medications))
	copy(out, c.medications)
	return out
}

func (c *medicationCatalog) RemoveAt(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.medications) {
		return false
	}
	c.medications = append(c.medications[:index], c.medications[index+1:]...)
	return true
}
