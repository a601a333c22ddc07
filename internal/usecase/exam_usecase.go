package usecase

import (
	"context"
	"strings"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ExamUsecase interface {
	Create(ctx context.Context, req *dto.CreateExamRequest) (*entity.Exam, error)
	List(ctx context.Context) []*entity.Exam
	Update(ctx context.Context, index int, req *dto.UpdateExamRequest) (*entity.Exam, error)
	Remove(ctx context.Context, index int) error
}

type examUsecase struct {
	log   *logrus.Logger
	exams repository.ExamCatalog
	now   func() time.Time
}

func NewExamUsecase(log *logrus.Logger, exams repository.ExamCatalog) ExamUsecase {
	return &examUsecase{log: log, exams: exams, now: time.Now}
}

func (u *examUsecase) Create(ctx context.Context, req *dto.CreateExamRequest) (*entity.Exam, error) {
	examType := entity.ExamType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !examType.IsValid() {
		return nil, invalidField("exam type", "use SANGUE, RAIO_X or ULTRASSOM")
	}

	prescribed, err := time.Parse(entity.DateLayout, req.PrescriptionDate)
	if err != nil {
		return nil, invalidField("prescription date", "use the DD-MM-YYYY format")
	}
	if prescribed.After(u.today()) {
		return nil, invalidField("prescription date", "must not be in the future")
	}

	performed, err := time.Parse(entity.DateLayout, req.PerformedDate)
	if err != nil {
		return nil, invalidField("performed date", "use the DD-MM-YYYY format")
	}
	if performed.Before(prescribed) {
		return nil, invalidField("performed date", "must not precede the prescription date")
	}
	if performed.After(u.today()) {
		return nil, invalidField("performed date", "must not be in the future")
	}

	result := strings.TrimSpace(req.Result)
	if result == "" {
		return nil, invalidField("result", "must not be empty")
	}

	if req.Cost.IsNegative() {
		return nil, invalidField("cost", "must not be negative")
	}

	exam := &entity.Exam{
		ID:               uuid.New(),
		Type:             examType,
		PrescriptionDate: prescribed,
		PerformedDate:    performed,
		Result:           result,
		Cost:             req.Cost,
	}
	u.exams.Add(exam)

	u.log.Infof("Exam created: id=%s, type=%s", exam.ID, examType)
	return exam, nil
}

func (u *examUsecase) List(ctx context.Context) []*entity.Exam {
	return u.exams.FindAll()
}

func (u *examUsecase) Update(ctx context.Context, index int, req *dto.UpdateExamRequest) (*entity.Exam, error) {
	exam := u.exams.Get(index)
	if exam == nil {
		return nil, notFound("exam")
	}

	examType := exam.Type
	if req.Type != "" {
		examType = entity.ExamType(strings.ToUpper(strings.TrimSpace(req.Type)))
		if !examType.IsValid() {
			return nil, invalidField("exam type", "use SANGUE, RAIO_X or ULTRASSOM")
		}
	}

	prescribed := exam.PrescriptionDate
	if req.PrescriptionDate != "" {
		parsed, err := time.Parse(entity.DateLayout, req.PrescriptionDate)
		if err != nil {
			return nil, invalidField("prescription date", "use the DD-MM-YYYY format")
		}
		if parsed.After(u.today()) {
			return nil, invalidField("prescription date", "must not be in the future")
		}
		prescribed = parsed
	}

	performed := exam.PerformedDate
	if req.PerformedDate != "" {
		parsed, err := time.Parse(entity.DateLayout, req.PerformedDate)
		if err != nil {
			return nil, invalidField("performed date", "use the DD-MM-YYYY format")
		}
		performed = parsed
	}
	if performed.Before(prescribed) {
		return nil, invalidField("performed date", "must not precede the prescription date")
	}
	if performed.After(u.today()) {
		return nil, invalidField("performed date", "must not be in the future")
	}

	result := exam.Result
	if req.Result != "" {
		result = strings.TrimSpace(req.Result)
		if result == "" {
			return nil, invalidField("result", "must not be empty")
		}
	}

	cost := exam.Cost
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, invalidField("cost", "must not be negative")
		}
		cost = *req.Cost
	}

	exam.Type = examType
	exam.PrescriptionDate = prescribed
	exam.PerformedDate = performed
	exam.Result = result
	exam.Cost = cost

	u.log.Infof("Exam updated: id=%s, index=%d", exam.ID, index)
	return exam, nil
}

func (u *examUsecase) Remove(ctx context.Context, index int) error {
	if !u.exams.RemoveAt(index) {
		return notFound("exam")
	}
	return nil
}

func (u *examUsecase) today() time.Time {
	now := u.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
