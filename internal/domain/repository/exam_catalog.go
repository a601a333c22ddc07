package repository

import "clinic-scheduling/internal/domain/entity"

// ExamCatalog is the flat exam collection. FindByType returns the first
// entry of the given type; listing order is insertion order and the ordinal
// index is the handle for update/removal.
type ExamCatalog interface {
	Add(exam *entity.Exam)
	Get(index int) *entity.Exam
	FindByType(examType entity.ExamType) *entity.Exam
	FindAll() []*entity.Exam
	RemoveAt(index int) bool
}
