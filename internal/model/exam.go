package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null"`
	Duration        int            `json:"duration" gorm:"not null"` // minutes
	CreatedBy       uint           `json:"created_by" gorm:"not null;index"`
	Creator         User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	AttemptsAllowed int            `json:"attempts_allowed" gorm:"not null;default:1"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
