package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminExamService is the exam CRUD used by admin and mediator roles.
// An exam and its questions are created in one transaction; mediators can
// only touch exams they created, admins can touch all of them.
type AdminExamService interface {
	CreateExam(creatorID uint, req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	GetExam(examID uint) (*dto.ExamResponseDTO, error)
	ListExams(actorID uint, role string) ([]dto.ExamSummaryDTO, error)
	UpdateExam(actorID uint, role string, examID uint, req dto.ExamUpdateDTO) (*dto.ExamResponseDTO, error)
	DeleteExam(actorID uint, role string, examID uint) error
}

type adminExamService struct {
	examRepo repository.ExamRepository
	db       *gorm.DB // transactions for delete cascade
}

func NewAdminExamService(examRepo repository.ExamRepository, db *gorm.DB) AdminExamService {
	return &adminExamService{examRepo: examRepo, db: db}
}

func (s *adminExamService) CreateExam(creatorID uint, req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		var question model.Question
		if err := copier.Copy(&question, &qDto); err != nil {
			return nil, fmt.Errorf("error preparing question %d: %w", i+1, err)
		}
		if !question.HasOption(question.Answer) {
			return nil, fmt.Errorf("question %d: %w", i+1, ErrInvalidQuestion)
		}
		questions = append(questions, question)
	}

	attemptsAllowed := req.AttemptsAllowed
	if attemptsAllowed < 1 {
		attemptsAllowed = 1
	}

	exam := model.Exam{
		Title:           req.Title,
		Duration:        req.Duration,
		CreatedBy:       creatorID,
		AttemptsAllowed: attemptsAllowed,
		Questions:       questions,
	}

	// gorm inserts the exam and its questions in a single transaction, so a
	// failed question insert leaves no half-created exam behind.
	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateExam: insert failed")
		return nil, fmt.Errorf("database error creating exam: %w", err)
	}

	created, err := s.examRepo.FindByIDWithQuestions(exam.ID)
	if err != nil {
		log.Error().Err(err).Uint("examID", exam.ID).Msg("CreateExam: failed to reload created exam")
		created = &exam
	}

	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminExamService) GetExam(examID uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("GetExam: repository error")
		return nil, fmt.Errorf("error loading exam %d: %w", examID, err)
	}

	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminExamService) ListExams(actorID uint, role string) ([]dto.ExamSummaryDTO, error) {
	var (
		exams []repository.ExamWithQuestionCount
		err   error
	)
	if role == model.RoleAdmin {
		exams, err = s.examRepo.FindAllWithQuestionCount()
	} else {
		exams, err = s.examRepo.FindByCreatorWithQuestionCount(actorID)
	}
	if err != nil {
		log.Error().Err(err).Uint("actorID", actorID).Str("role", role).Msg("ListExams: repository error")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	dtos := make([]dto.ExamSummaryDTO, len(exams))
	for i, e := range exams {
		dtos[i] = dto.ExamSummaryDTO{
			ID:              e.Exam.ID,
			Title:           e.Exam.Title,
			Duration:        e.Exam.Duration,
			CreatedBy:       e.Exam.CreatedBy,
			AttemptsAllowed: e.Exam.AttemptsAllowed,
			QuestionCount:   e.QuestionCount,
			CreatedAt:       e.Exam.CreatedAt,
		}
	}
	return dtos, nil
}

func (s *adminExamService) UpdateExam(actorID uint, role string, examID uint, req dto.ExamUpdateDTO) (*dto.ExamResponseDTO, error) {
	exam, err := s.loadOwned(actorID, role, examID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Duration != nil {
		exam.Duration = *req.Duration
	}
	if req.AttemptsAllowed != nil {
		exam.AttemptsAllowed = *req.AttemptsAllowed
	}

	if err := s.examRepo.Update(exam); err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("UpdateExam: save failed")
		return nil, fmt.Errorf("database error updating exam: %w", err)
	}

	return s.GetExam(examID)
}

// DeleteExam removes the exam and all its questions; questions never
// outlive their exam. Past submissions stay, as append-only history.
func (s *adminExamService) DeleteExam(actorID uint, role string, examID uint) error {
	if _, err := s.loadOwned(actorID, role, examID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", examID).Delete(&model.Question{}).Error; err != nil {
			return fmt.Errorf("error deleting questions: %w", err)
		}
		return tx.Delete(&model.Exam{}, examID).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("DeleteExam: cascade delete failed")
		return err
	}

	log.Info().Uint("examID", examID).Msg("Exam deleted with its questions")
	return nil
}

func (s *adminExamService) loadOwned(actorID uint, role string, examID uint) (*model.Exam, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("error loading exam %d: %w", examID, err)
	}
	if role != model.RoleAdmin && exam.CreatedBy != actorID {
		return nil, ErrNotExamOwner
	}
	return exam, nil
}
