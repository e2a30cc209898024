package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
)

func TestAttemptStatusFreshExam(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	student := seedUser(t, db, "Student", "stu@example.com", model.RoleStudent)
	exam := seedExam(t, db, mediator.ID, 3, 30, 2)

	policy := NewAttemptPolicyService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))

	status, err := policy.Status(exam.ID, student.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.AttemptsAllowed != 3 || status.AttemptsUsed != 0 || status.AttemptsLeft != 3 {
		t.Fatalf("status = %+v, want allowed=3 used=0 left=3", status)
	}
}

func TestAttemptStatusCountsSubmissions(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	student := seedUser(t, db, "Student", "stu@example.com", model.RoleStudent)
	other := seedUser(t, db, "Other", "other@example.com", model.RoleStudent)
	exam := seedExam(t, db, mediator.ID, 2, 30, 2)

	for i := 1; i <= 2; i++ {
		sub := model.Submission{ExamID: exam.ID, StudentID: student.ID, Answers: "{}", AttemptNumber: i, SubmittedAt: time.Now()}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}
	// Another student's attempt must not count against this student.
	otherSub := model.Submission{ExamID: exam.ID, StudentID: other.ID, Answers: "{}", AttemptNumber: 1, SubmittedAt: time.Now()}
	if err := db.Create(&otherSub).Error; err != nil {
		t.Fatalf("seed other submission: %v", err)
	}

	policy := NewAttemptPolicyService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))

	status, err := policy.Status(exam.ID, student.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.AttemptsUsed != 2 || status.AttemptsLeft != 0 {
		t.Fatalf("status = %+v, want used=2 left=0", status)
	}
}

func TestAttemptStatusLeftNeverNegative(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	student := seedUser(t, db, "Student", "stu@example.com", model.RoleStudent)
	exam := seedExam(t, db, mediator.ID, 2, 30, 1)

	// Simulate the ceiling having been lowered after three attempts landed.
	for i := 1; i <= 3; i++ {
		sub := model.Submission{ExamID: exam.ID, StudentID: student.ID, Answers: "{}", AttemptNumber: i, SubmittedAt: time.Now()}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}

	policy := NewAttemptPolicyService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))

	status, err := policy.Status(exam.ID, student.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.AttemptsUsed != 3 || status.AttemptsLeft != 0 {
		t.Fatalf("status = %+v, want used=3 left=0", status)
	}
}

func TestAttemptStatusUnknownExam(t *testing.T) {
	db := newTestDB(t)
	student := seedUser(t, db, "Student", "stu@example.com", model.RoleStudent)

	policy := NewAttemptPolicyService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))

	if _, err := policy.Status(12345, student.ID); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound", err)
	}
}
