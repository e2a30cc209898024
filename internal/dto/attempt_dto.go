package dto

import "time"

// AttemptStatusDTO reports attempt usage for one (exam, student) pair.
type AttemptStatusDTO struct {
	AttemptsAllowed int `json:"attempts_allowed"`
	AttemptsUsed    int `json:"attempts_used"`
	AttemptsLeft    int `json:"attempts_left"`
}

// EnterExamDTO is returned when a student is admitted into an exam.
// Questions are the public shape, with answers stripped.
type EnterExamDTO struct {
	ExamID         uint                `json:"exam_id"`
	Title          string              `json:"title"`
	Duration       int                 `json:"duration"`
	TabSwitchLimit int                 `json:"tab_switch_limit"`
	AttemptsLeft   int                 `json:"attempts_left"`
	Questions      []QuestionPublicDTO `json:"questions"`
}

// SubmitExamDTO is the request body for submitting an attempt. Answers maps
// question id (as a string) to the selected option; questions missing from
// the map count as unanswered.
type SubmitExamDTO struct {
	Answers        map[string]string `json:"answers" binding:"required"`
	ElapsedSeconds *int              `json:"elapsed_seconds" binding:"omitempty,min=0"`
	TabSwitches    int               `json:"tab_switches" binding:"omitempty,min=0"`
}

// SubmitResultDTO reports the outcome of a graded submission.
type SubmitResultDTO struct {
	Score         int `json:"score"`
	Total         int `json:"total"`
	AttemptNumber int `json:"attempt_number"`
}

// SubmissionSummaryDTO lists a student's own attempts.
type SubmissionSummaryDTO struct {
	ID            uint      `json:"id"`
	ExamID        uint      `json:"exam_id"`
	Score         int       `json:"score"`
	AttemptNumber int       `json:"attempt_number"`
	SubmittedAt   time.Time `json:"submitted_at"`
	TimeTaken     *int      `json:"time_taken,omitempty"`
}

// LeaderboardRowDTO is one ranked row of the leaderboard.
type LeaderboardRowDTO struct {
	StudentName   string    `json:"student_name"`
	ExamTitle     string    `json:"exam_title"`
	Score         int       `json:"score"`
	AttemptNumber int       `json:"attempt_number"`
	SubmittedAt   time.Time `json:"submitted_at"`
	TimeTaken     *int      `json:"time_taken,omitempty"`
}
