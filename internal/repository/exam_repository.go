package repository

import (
	"github.com/lshigami/Axolotls/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllWithQuestionCount() ([]ExamWithQuestionCount, error)
	FindByCreatorWithQuestionCount(creatorID uint) ([]ExamWithQuestionCount, error)
	Update(exam *model.Exam) error
}

type ExamWithQuestionCount struct {
	model.Exam
	QuestionCount int
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	// GORM creates the associated questions when exam.Questions is populated.
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindAllWithQuestionCount() ([]ExamWithQuestionCount, error) {
	return r.findWithQuestionCount(r.db.Model(&model.Exam{}))
}

func (r *examRepository) FindByCreatorWithQuestionCount(creatorID uint) ([]ExamWithQuestionCount, error) {
	return r.findWithQuestionCount(r.db.Model(&model.Exam{}).Where("exams.created_by = ?", creatorID))
}

func (r *examRepository) findWithQuestionCount(query *gorm.DB) ([]ExamWithQuestionCount, error) {
	var results []ExamWithQuestionCount
	err := query.
		Select("exams.*, (SELECT COUNT(*) FROM questions WHERE questions.exam_id = exams.id AND questions.deleted_at IS NULL) as question_count").
		Where("exams.deleted_at IS NULL").
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Save(exam).Error
}
