package service

import (
	"testing"
	"time"

	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
)

func TestStudentListExamsWithAttemptUsage(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	student := seedUser(t, db, "Student", "stu@example.com", model.RoleStudent)
	examA := seedExam(t, db, mediator.ID, 2, 30, 2)
	examB := seedExam(t, db, mediator.ID, 1, 30, 3)

	sub := model.Submission{ExamID: examA.ID, StudentID: student.ID, Answers: "{}", AttemptNumber: 1, SubmittedAt: time.Now()}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	svc := NewStudentExamService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))

	exams, err := svc.ListExams(student.ID)
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if len(exams) != 2 {
		t.Fatalf("exam count = %d, want 2", len(exams))
	}

	byID := make(map[uint]int)
	for i, e := range exams {
		byID[e.ID] = i
	}
	a := exams[byID[examA.ID]]
	if a.AttemptsUsed != 1 || a.AttemptsLeft != 1 {
		t.Fatalf("exam A usage = %+v, want used=1 left=1", a)
	}
	b := exams[byID[examB.ID]]
	if b.AttemptsUsed != 0 || b.AttemptsLeft != 1 {
		t.Fatalf("exam B usage = %+v, want used=0 left=1", b)
	}
}

func TestStudentListExamsEmpty(t *testing.T) {
	db := newTestDB(t)
	student := seedUser(t, db, "Student", "stu@example.com", model.RoleStudent)

	svc := NewStudentExamService(repository.NewExamRepository(db), repository.NewSubmissionRepository(db))

	exams, err := svc.ListExams(student.ID)
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if len(exams) != 0 {
		t.Fatalf("exam count = %d, want 0", len(exams))
	}
}
