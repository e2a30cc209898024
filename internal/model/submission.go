package model

import (
	"time"
)

// Submission is one completed attempt of an exam by a student. Rows are
// append-only: a new attempt is always a new row, never an update. The
// unique index on (exam_id, student_id, attempt_number) backs the
// attempt-ceiling check done inside the submit transaction.
type Submission struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamID        uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_student_attempt"`
	StudentID     uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_exam_student_attempt"`
	Answers       string    `json:"answers" gorm:"type:text;not null"` // JSON map question-id -> selected option
	Score         int       `json:"score" gorm:"not null"`
	AttemptNumber int       `json:"attempt_number" gorm:"not null;uniqueIndex:idx_exam_student_attempt"`
	SubmittedAt   time.Time `json:"submitted_at" gorm:"not null;index"`
	TimeTaken     *int      `json:"time_taken,omitempty"` // seconds; nil on legacy rows
	TabSwitches   int       `json:"tab_switches"`
	CreatedAt     time.Time `json:"created_at"`
}
