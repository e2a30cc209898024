package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Axolotls/config"
	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamSessionService orchestrates the take-exam flow: admission check,
// question delivery with answers stripped, grading, and atomic persistence
// of the submission.
type ExamSessionService interface {
	EnterExam(examID, studentID uint) (*dto.EnterExamDTO, error)
	SubmitExam(examID, studentID uint, req dto.SubmitExamDTO) (*dto.SubmitResultDTO, error)
	GetStudentAttempts(examID, studentID uint) ([]dto.SubmissionSummaryDTO, error)
}

type examSessionService struct {
	examRepo       repository.ExamRepository
	submissionRepo repository.SubmissionRepository
	policy         AttemptPolicyService
	scoring        ScoringService
	cfg            *config.Config
	db             *gorm.DB // transactions for SubmitExam
}

func NewExamSessionService(
	examRepo repository.ExamRepository,
	submissionRepo repository.SubmissionRepository,
	policy AttemptPolicyService,
	scoring ScoringService,
	cfg *config.Config,
	db *gorm.DB,
) ExamSessionService {
	return &examSessionService{
		examRepo:       examRepo,
		submissionRepo: submissionRepo,
		policy:         policy,
		scoring:        scoring,
		cfg:            cfg,
		db:             db,
	}
}

// EnterExam admits a student into an exam and returns the question set in
// the public shape. The answer never leaves the service layer here: the
// public DTO has no field for it.
func (s *examSessionService) EnterExam(examID, studentID uint) (*dto.EnterExamDTO, error) {
	status, err := s.policy.Status(examID, studentID)
	if err != nil {
		return nil, err
	}
	if status.AttemptsLeft <= 0 {
		return nil, ErrAttemptsExhausted
	}

	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("EnterExam: failed to load exam with questions")
		return nil, fmt.Errorf("error loading exam %d: %w", examID, err)
	}

	questions := make([]dto.QuestionPublicDTO, len(exam.Questions))
	for i := range exam.Questions {
		if err := copier.Copy(&questions[i], &exam.Questions[i]); err != nil {
			return nil, fmt.Errorf("error preparing question payload: %w", err)
		}
	}

	return &dto.EnterExamDTO{
		ExamID:         exam.ID,
		Title:          exam.Title,
		Duration:       exam.Duration,
		TabSwitchLimit: s.cfg.Exam.TabSwitchLimit,
		AttemptsLeft:   status.AttemptsLeft,
		Questions:      questions,
	}, nil
}

// SubmitExam grades the submitted answers and persists the attempt. The
// attempt count is re-read inside the same transaction as the insert, and
// the unique (exam_id, student_id, attempt_number) index makes two racing
// submissions collide instead of both committing, so the attempts ceiling
// holds under concurrency.
func (s *examSessionService) SubmitExam(examID, studentID uint, req dto.SubmitExamDTO) (*dto.SubmitResultDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("SubmitExam: failed to load exam with questions")
		return nil, fmt.Errorf("error loading exam %d: %w", examID, err)
	}

	if req.ElapsedSeconds != nil && exam.Duration > 0 {
		deadline := exam.Duration*60 + s.cfg.Exam.DeadlineGraceSecs
		if *req.ElapsedSeconds > deadline {
			return nil, ErrDeadlineExceeded
		}
	}

	// Keep only answers that belong to this exam's questions; questions
	// without an entry count as unanswered.
	answers := make(map[string]string, len(exam.Questions))
	for _, q := range exam.Questions {
		key := strconv.FormatUint(uint64(q.ID), 10)
		if v, ok := req.Answers[key]; ok {
			answers[key] = v
		}
	}

	score := s.scoring.Score(exam.Questions, answers)

	blob, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("error serializing answers: %w", err)
	}

	var submission model.Submission
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var used int64
		if err := tx.Model(&model.Submission{}).
			Where("exam_id = ? AND student_id = ?", examID, studentID).
			Count(&used).Error; err != nil {
			return fmt.Errorf("error counting attempts: %w", err)
		}
		if int(used) >= exam.AttemptsAllowed {
			return ErrAttemptsExhausted
		}

		submission = model.Submission{
			ExamID:        examID,
			StudentID:     studentID,
			Answers:       string(blob),
			Score:         score,
			AttemptNumber: int(used) + 1,
			SubmittedAt:   time.Now(),
			TimeTaken:     req.ElapsedSeconds,
			TabSwitches:   req.TabSwitches,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return fmt.Errorf("error saving submission: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAttemptsExhausted) {
			return nil, ErrAttemptsExhausted
		}
		log.Error().Err(err).Uint("examID", examID).Uint("studentID", studentID).Msg("SubmitExam: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("examID", examID).
		Uint("studentID", studentID).
		Int("score", score).
		Int("attemptNumber", submission.AttemptNumber).
		Int("tabSwitches", req.TabSwitches).
		Msg("Exam submission recorded")

	return &dto.SubmitResultDTO{
		Score:         score,
		Total:         len(exam.Questions),
		AttemptNumber: submission.AttemptNumber,
	}, nil
}

// GetStudentAttempts lists a student's own submissions for one exam.
func (s *examSessionService) GetStudentAttempts(examID, studentID uint) ([]dto.SubmissionSummaryDTO, error) {
	submissions, err := s.submissionRepo.FindByExamAndStudent(examID, studentID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Uint("studentID", studentID).Msg("GetStudentAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	dtos := make([]dto.SubmissionSummaryDTO, 0, len(submissions))
	for i := range submissions {
		var summary dto.SubmissionSummaryDTO
		if err := copier.Copy(&summary, &submissions[i]); err != nil {
			log.Error().Err(err).Uint("submissionID", submissions[i].ID).Msg("GetStudentAttempts: error copying submission to DTO")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
