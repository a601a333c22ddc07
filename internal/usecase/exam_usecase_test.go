package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExamUsecase() *examUsecase {
	u := NewExamUsecase(testLogger(), repository.NewExamCatalog()).(*examUsecase)
	u.now = func() time.Time { return testNow }
	return u
}

func createExamRequest() *dto.CreateExamRequest {
	return &dto.CreateExamRequest{
		Type:             "SANGUE",
		PrescriptionDate: "01-03-2026",
		PerformedDate:    "05-03-2026",
		Result:           "normal",
		Cost:             decimal.NewFromInt(80),
	}
}

func TestCreateExam(t *testing.T) {
	u := newTestExamUsecase()

	exam, err := u.Create(context.Background(), createExamRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.ExamBlood, exam.Type)
	assert.Equal(t, "01-03-2026", exam.PrescriptionDate.Format(entity.DateLayout))
	assert.Equal(t, "05-03-2026", exam.PerformedDate.Format(entity.DateLayout))
	assert.Equal(t, "normal", exam.Result)
}

func TestCreateExamDateRules(t *testing.T) {
	u := newTestExamUsecase()
	ctx := context.Background()

	// Performed before prescribed.
	bad := createExamRequest()
	bad.PerformedDate = "28-02-2026"
	_, err := u.Create(ctx, bad)
	assert.True(t, IsValidation(err))

	// Prescribed in the future relative to the fixture clock.
	bad = createExamRequest()
	bad.PrescriptionDate = "20-03-2026"
	bad.PerformedDate = "21-03-2026"
	_, err = u.Create(ctx, bad)
	assert.True(t, IsValidation(err))

	// Performed in the future.
	bad = createExamRequest()
	bad.PerformedDate = "20-03-2026"
	_, err = u.Create(ctx, bad)
	assert.True(t, IsValidation(err))

	// Same-day prescription and execution is allowed.
	ok := createExamRequest()
	ok.PerformedDate = "01-03-2026"
	_, err = u.Create(ctx, ok)
	assert.NoError(t, err)
}

func TestCreateExamValidation(t *testing.T) {
	u := newTestExamUsecase()
	ctx := context.Background()

	bad := createExamRequest()
	bad.Type = "URINA"
	_, err := u.Create(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = createExamRequest()
	bad.Result = "  "
	_, err = u.Create(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = createExamRequest()
	bad.Cost = decimal.NewFromInt(-5)
	_, err = u.Create(ctx, bad)
	assert.True(t, IsValidation(err))
}

func TestUpdateExam(t *testing.T) {
	u := newTestExamUsecase()
	ctx := context.Background()

	_, err := u.Create(ctx, createExamRequest())
	require.NoError(t, err)

	updated, err := u.Update(ctx, 0, &dto.UpdateExamRequest{Result: "elevated glucose"})
	require.NoError(t, err)
	assert.Equal(t, "elevated glucose", updated.Result)
	assert.Equal(t, entity.ExamBlood, updated.Type)

	// Moving the prescription past the kept performed date is rejected.
	_, err = u.Update(ctx, 0, &dto.UpdateExamRequest{PrescriptionDate: "10-03-2026"})
	assert.True(t, IsValidation(err))

	_, err = u.Update(ctx, 3, &dto.UpdateExamRequest{})
	assert.True(t, IsNotFound(err))
}

func TestRemoveExam(t *testing.T) {
	u := newTestExamUsecase()
	ctx := context.Background()

	_, err := u.Create(ctx, createExamRequest())
	require.NoError(t, err)

	require.NoError(t, u.Remove(ctx, 0))
	assert.Empty(t, u.List(ctx))
	assert.True(t, IsNotFound(u.Remove(ctx, 0)))
}
