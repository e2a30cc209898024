package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptPolicyService computes attempt usage and admission for one
// (exam, student) pair. The session service re-evaluates it inside the
// submit transaction; this read path feeds dashboards and the enter gate.
type AttemptPolicyService interface {
	Status(examID, studentID uint) (*dto.AttemptStatusDTO, error)
}

type attemptPolicyService struct {
	examRepo       repository.ExamRepository
	submissionRepo repository.SubmissionRepository
}

func NewAttemptPolicyService(examRepo repository.ExamRepository, submissionRepo repository.SubmissionRepository) AttemptPolicyService {
	return &attemptPolicyService{examRepo: examRepo, submissionRepo: submissionRepo}
}

func (s *attemptPolicyService) Status(examID, studentID uint) (*dto.AttemptStatusDTO, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("AttemptPolicy: failed to load exam")
		return nil, fmt.Errorf("error loading exam %d: %w", examID, err)
	}

	used, err := s.submissionRepo.CountByExamAndStudent(examID, studentID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Uint("studentID", studentID).Msg("AttemptPolicy: failed to count submissions")
		return nil, fmt.Errorf("error counting attempts: %w", err)
	}

	left := exam.AttemptsAllowed - int(used)
	if left < 0 {
		left = 0
	}
	return &dto.AttemptStatusDTO{
		AttemptsAllowed: exam.AttemptsAllowed,
		AttemptsUsed:    int(used),
		AttemptsLeft:    left,
	}, nil
}
