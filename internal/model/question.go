package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ExamID    uint           `json:"exam_id" gorm:"not null;index"`
	Prompt    string         `json:"prompt" gorm:"type:text;not null"`
	Image     *string        `json:"image,omitempty"`
	Option1   string         `json:"option1" gorm:"not null"`
	Option2   string         `json:"option2" gorm:"not null"`
	Option3   string         `json:"option3" gorm:"not null"`
	Option4   string         `json:"option4" gorm:"not null"`
	Answer    string         `json:"answer" gorm:"not null"` // must equal one of the four options
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Options returns the four option strings in declared order.
func (q *Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// HasOption reports whether v matches one of the four options exactly.
func (q *Question) HasOption(v string) bool {
	return v == q.Option1 || v == q.Option2 || v == q.Option3 || v == q.Option4
}
