package service

import (
	"testing"
	"time"

	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func seedSubmission(t *testing.T, db *gorm.DB, examID, studentID uint, attempt, score int, submittedAt time.Time, timeTaken *int) {
	t.Helper()
	sub := model.Submission{
		ExamID:        examID,
		StudentID:     studentID,
		Answers:       "{}",
		Score:         score,
		AttemptNumber: attempt,
		SubmittedAt:   submittedAt,
		TimeTaken:     timeTaken,
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed submission: %v", err)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.RoleStudent)
	bob := seedUser(t, db, "Bob", "bob@example.com", model.RoleStudent)
	carol := seedUser(t, db, "Carol", "carol@example.com", model.RoleStudent)
	dave := seedUser(t, db, "Dave", "dave@example.com", model.RoleStudent)
	exam := seedExam(t, db, mediator.ID, 3, 30, 5)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// Bob wins outright on score. Alice and Carol tie on score; Alice was
	// faster. Dave ties their score but has no recorded time, so he ranks
	// after both despite submitting first.
	seedSubmission(t, db, exam.ID, alice.ID, 1, 4, base.Add(3*time.Minute), intPtr(500))
	seedSubmission(t, db, exam.ID, bob.ID, 1, 5, base.Add(5*time.Minute), intPtr(900))
	seedSubmission(t, db, exam.ID, carol.ID, 1, 4, base.Add(1*time.Minute), intPtr(700))
	seedSubmission(t, db, exam.ID, dave.ID, 1, 4, base, nil)

	svc := NewLeaderboardService(repository.NewSubmissionRepository(db))

	rows, err := svc.Rank(nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	wantOrder := []string{"Bob", "Alice", "Carol", "Dave"}
	if len(rows) != len(wantOrder) {
		t.Fatalf("row count = %d, want %d", len(rows), len(wantOrder))
	}
	for i, want := range wantOrder {
		if rows[i].StudentName != want {
			t.Fatalf("rank %d = %s, want %s (rows: %+v)", i+1, rows[i].StudentName, want, rows)
		}
	}
	if rows[0].ExamTitle != exam.Title {
		t.Fatalf("exam title = %q, want %q", rows[0].ExamTitle, exam.Title)
	}

	// Ranking the same data again yields the identical order.
	again, err := svc.Rank(nil)
	if err != nil {
		t.Fatalf("second Rank: %v", err)
	}
	for i := range rows {
		if again[i].StudentName != rows[i].StudentName {
			t.Fatalf("rank %d changed between runs: %s vs %s", i+1, rows[i].StudentName, again[i].StudentName)
		}
	}
}

func TestLeaderboardTieBreaksOnSubmissionTime(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.RoleStudent)
	bob := seedUser(t, db, "Bob", "bob@example.com", model.RoleStudent)
	exam := seedExam(t, db, mediator.ID, 2, 30, 3)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// Same score, same time taken: the earlier submission ranks first.
	seedSubmission(t, db, exam.ID, bob.ID, 1, 3, base.Add(time.Hour), intPtr(400))
	seedSubmission(t, db, exam.ID, alice.ID, 1, 3, base, intPtr(400))

	svc := NewLeaderboardService(repository.NewSubmissionRepository(db))

	rows, err := svc.Rank(nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if rows[0].StudentName != "Alice" || rows[1].StudentName != "Bob" {
		t.Fatalf("order = [%s, %s], want [Alice, Bob]", rows[0].StudentName, rows[1].StudentName)
	}
}

func TestLeaderboardFiltersByExam(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.RoleStudent)
	examA := seedExam(t, db, mediator.ID, 1, 30, 2)
	examB := seedExam(t, db, mediator.ID, 1, 30, 2)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedSubmission(t, db, examA.ID, alice.ID, 1, 2, base, intPtr(100))
	seedSubmission(t, db, examB.ID, alice.ID, 1, 1, base, intPtr(200))

	svc := NewLeaderboardService(repository.NewSubmissionRepository(db))

	rows, err := svc.Rank(&examB.ID)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	if rows[0].Score != 1 {
		t.Fatalf("score = %d, want 1", rows[0].Score)
	}

	all, err := svc.Rank(nil)
	if err != nil {
		t.Fatalf("Rank all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered row count = %d, want 2", len(all))
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	db := newTestDB(t)

	svc := NewLeaderboardService(repository.NewSubmissionRepository(db))

	rows, err := svc.Rank(nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("row count = %d, want 0", len(rows))
	}
}
