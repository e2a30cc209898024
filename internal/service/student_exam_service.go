package service

import (
	"fmt"

	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/rs/zerolog/log"
)

// StudentExamService backs the student dashboard: every exam with the
// caller's attempt usage against it.
type StudentExamService interface {
	ListExams(studentID uint) ([]dto.StudentExamDTO, error)
}

type studentExamService struct {
	examRepo       repository.ExamRepository
	submissionRepo repository.SubmissionRepository
}

func NewStudentExamService(examRepo repository.ExamRepository, submissionRepo repository.SubmissionRepository) StudentExamService {
	return &studentExamService{examRepo: examRepo, submissionRepo: submissionRepo}
}

func (s *studentExamService) ListExams(studentID uint) ([]dto.StudentExamDTO, error) {
	exams, err := s.examRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("StudentExams: failed to fetch exams")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	dtos := make([]dto.StudentExamDTO, 0, len(exams))
	for _, e := range exams {
		used, err := s.submissionRepo.CountByExamAndStudent(e.Exam.ID, studentID)
		if err != nil {
			log.Error().Err(err).Uint("examID", e.Exam.ID).Uint("studentID", studentID).Msg("StudentExams: failed to count attempts")
			return nil, fmt.Errorf("error counting attempts: %w", err)
		}
		left := e.Exam.AttemptsAllowed - int(used)
		if left < 0 {
			left = 0
		}
		dtos = append(dtos, dto.StudentExamDTO{
			ID:              e.Exam.ID,
			Title:           e.Exam.Title,
			Duration:        e.Exam.Duration,
			AttemptsAllowed: e.Exam.AttemptsAllowed,
			AttemptsUsed:    int(used),
			AttemptsLeft:    left,
		})
	}
	return dtos, nil
}
