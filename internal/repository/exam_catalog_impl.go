package repository

import (
	"sync"

	"clinic-scheduling/internal/domain/entity"
	domainRepo "clinic-scheduling/internal/domain/repository"
)

type examCatalog struct {
	mu    sync.RWMutex
	exams []*entity.Exam
}

func NewExamCatalog() domainRepo.ExamCatalog {
	return &examCatalog{}
}

func (c *examCatalog) Add(exam *entity.Exam) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exams = append(c.exams, exam)
}

func (c *examCatalog) Get(index int) *entity.Exam {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.exams) {
		return nil
	}
	return c.exams[index]
}

// FindByType returns the first catalog entry of the given type; the same
// object is shared with every appointment it gets attached to.
func (c *examCatalog) FindByType(examType entity.ExamType) *entity.Exam {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ex := range c.exams {
		if ex.Type == examType {
			return ex
		}
	}
	return nil
}

func (c *examCatalog) FindAll() []*entity.Exam {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Exam, len(c.exams))
	copy(out, c.exams)
	return out
}

func (c *examCatalog) RemoveAt(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.exams) {
		return false
	}
	c.exams = append(c.exams[:index], c.exams[index+1:]...)
	return true
}
