package repository

import (
	"time"

	"github.com/lshigami/Axolotls/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	CountByExamAndStudent(examID, studentID uint) (int64, error)
	FindByExamAndStudent(examID, studentID uint) ([]model.Submission, error)
	ListJoined(examID *uint) ([]SubmissionJoined, error)
}

// SubmissionJoined is a submission joined with student name and exam title,
// the raw material of a leaderboard row.
type SubmissionJoined struct {
	ID            uint
	ExamID        uint
	StudentID     uint
	StudentName   string
	ExamTitle     string
	Score         int
	AttemptNumber int
	SubmittedAt   time.Time
	TimeTaken     *int
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CountByExamAndStudent(examID, studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) FindByExamAndStudent(examID, studentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("exam_id = ? AND student_id = ?", examID, studentID).
		Order("attempt_number ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) ListJoined(examID *uint) ([]SubmissionJoined, error) {
	query := r.db.Model(&model.Submission{}).
		Select("submissions.id, submissions.exam_id, submissions.student_id, users.name as student_name, exams.title as exam_title, submissions.score, submissions.attempt_number, submissions.submitted_at, submissions.time_taken").
		Joins("JOIN users ON users.id = submissions.student_id").
		Joins("JOIN exams ON exams.id = submissions.exam_id")
	if examID != nil {
		query = query.Where("submissions.exam_id = ?", *examID)
	}
	var rows []SubmissionJoined
	err := query.Scan(&rows).Error
	return rows, err
}
