package dto

import "time"

// QuestionCreateDTO is used within ExamCreateDTO for exam creation.
type QuestionCreateDTO struct {
	Prompt  string  `json:"prompt" binding:"required"`
	Image   *string `json:"image"`
	Option1 string  `json:"option1" binding:"required"`
	Option2 string  `json:"option2" binding:"required"`
	Option3 string  `json:"option3" binding:"required"`
	Option4 string  `json:"option4" binding:"required"`
	Answer  string  `json:"answer" binding:"required"`
}

// ExamCreateDTO is for admin/mediator to create a new exam with all its questions.
type ExamCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Duration        int                 `json:"duration" binding:"required,min=1"`
	AttemptsAllowed int                 `json:"attempts_allowed" binding:"omitempty,min=1"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// ExamUpdateDTO updates exam metadata. Questions are not editable in place.
type ExamUpdateDTO struct {
	Title           *string `json:"title"`
	Duration        *int    `json:"duration" binding:"omitempty,min=1"`
	AttemptsAllowed *int    `json:"attempts_allowed" binding:"omitempty,min=1"`
}

// QuestionResponseDTO is the full question shape, including the answer.
// It must only ever be serialized for admin/mediator views and scoring.
type QuestionResponseDTO struct {
	ID      uint    `json:"id"`
	ExamID  uint    `json:"exam_id"`
	Prompt  string  `json:"prompt"`
	Image   *string `json:"image,omitempty"`
	Option1 string  `json:"option1"`
	Option2 string  `json:"option2"`
	Option3 string  `json:"option3"`
	Option4 string  `json:"option4"`
	Answer  string  `json:"answer"`
}

// QuestionPublicDTO is the question shape delivered to an exam-taking
// student. It deliberately has no answer field at all, so the answer can
// never leak through serialization.
type QuestionPublicDTO struct {
	ID      uint    `json:"id"`
	ExamID  uint    `json:"exam_id"`
	Prompt  string  `json:"prompt"`
	Image   *string `json:"image,omitempty"`
	Option1 string  `json:"option1"`
	Option2 string  `json:"option2"`
	Option3 string  `json:"option3"`
	Option4 string  `json:"option4"`
}

// ExamResponseDTO is for displaying full exam details to admin/mediator.
type ExamResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Duration        int                   `json:"duration"`
	CreatedBy       uint                  `json:"created_by"`
	AttemptsAllowed int                   `json:"attempts_allowed"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ExamSummaryDTO lists exams for management views.
type ExamSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Duration        int       `json:"duration"`
	CreatedBy       uint      `json:"created_by"`
	AttemptsAllowed int       `json:"attempts_allowed"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudentExamDTO lists exams for the student dashboard with attempt usage.
type StudentExamDTO struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Duration        int    `json:"duration"`
	AttemptsAllowed int    `json:"attempts_allowed"`
	AttemptsUsed    int    `json:"attempts_used"`
	AttemptsLeft    int    `json:"attempts_left"`
}
