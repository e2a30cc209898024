package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
)

func strPtr(v string) *string { return &v }

func examCreateRequest() dto.ExamCreateDTO {
	return dto.ExamCreateDTO{
		Title:           "Physics Midterm",
		Duration:        60,
		AttemptsAllowed: 2,
		Questions: []dto.QuestionCreateDTO{
			{Prompt: "Unit of force?", Option1: "Joule", Option2: "Newton", Option3: "Watt", Option4: "Pascal", Answer: "Newton"},
			{Prompt: "Speed of light?", Option1: "3e8 m/s", Option2: "3e6 m/s", Option3: "3e5 m/s", Option4: "3e7 m/s", Answer: "3e8 m/s"},
		},
	}
}

func TestCreateExamWithQuestions(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	created, err := svc.CreateExam(mediator.ID, examCreateRequest())
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if created.ID == 0 || created.CreatedBy != mediator.ID {
		t.Fatalf("created = %+v, want persisted exam owned by %d", created, mediator.ID)
	}
	if created.AttemptsAllowed != 2 {
		t.Fatalf("attempts allowed = %d, want 2", created.AttemptsAllowed)
	}
	if len(created.Questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(created.Questions))
	}
	if created.Questions[0].Answer != "Newton" {
		t.Fatalf("first question answer = %q, want Newton", created.Questions[0].Answer)
	}
}

func TestCreateExamDefaultsAttemptsAllowed(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	req := examCreateRequest()
	req.AttemptsAllowed = 0
	created, err := svc.CreateExam(mediator.ID, req)
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if created.AttemptsAllowed != 1 {
		t.Fatalf("attempts allowed = %d, want default 1", created.AttemptsAllowed)
	}
}

func TestCreateExamRejectsAnswerOutsideOptions(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	req := examCreateRequest()
	req.Questions[1].Answer = "not an option"
	if _, err := svc.CreateExam(mediator.ID, req); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("err = %v, want ErrInvalidQuestion", err)
	}

	// Nothing half-created.
	var count int64
	if err := db.Model(&model.Exam{}).Count(&count).Error; err != nil {
		t.Fatalf("count exams: %v", err)
	}
	if count != 0 {
		t.Fatalf("exam count = %d, want 0", count)
	}
}

func TestListExamsScopedByRole(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	mediatorA := seedUser(t, db, "Mediator A", "a@example.com", model.RoleMediator)
	mediatorB := seedUser(t, db, "Mediator B", "b@example.com", model.RoleMediator)
	seedExam(t, db, mediatorA.ID, 1, 30, 2)
	seedExam(t, db, mediatorB.ID, 1, 30, 3)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	adminView, err := svc.ListExams(admin.ID, model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListExams as admin: %v", err)
	}
	if len(adminView) != 2 {
		t.Fatalf("admin sees %d exams, want 2", len(adminView))
	}

	mediatorView, err := svc.ListExams(mediatorA.ID, model.RoleMediator)
	if err != nil {
		t.Fatalf("ListExams as mediator: %v", err)
	}
	if len(mediatorView) != 1 {
		t.Fatalf("mediator sees %d exams, want 1", len(mediatorView))
	}
	if mediatorView[0].CreatedBy != mediatorA.ID {
		t.Fatalf("mediator sees exam of creator %d, want own %d", mediatorView[0].CreatedBy, mediatorA.ID)
	}
	if mediatorView[0].QuestionCount != 2 {
		t.Fatalf("question count = %d, want 2", mediatorView[0].QuestionCount)
	}
}

func TestUpdateExamPatchesFields(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	exam := seedExam(t, db, mediator.ID, 1, 30, 2)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	updated, err := svc.UpdateExam(mediator.ID, model.RoleMediator, exam.ID, dto.ExamUpdateDTO{
		Title:           strPtr("Renamed"),
		AttemptsAllowed: intPtr(5),
	})
	if err != nil {
		t.Fatalf("UpdateExam: %v", err)
	}
	if updated.Title != "Renamed" || updated.AttemptsAllowed != 5 {
		t.Fatalf("updated = %+v, want title Renamed and attempts 5", updated)
	}
	if updated.Duration != 30 {
		t.Fatalf("duration = %d, want untouched 30", updated.Duration)
	}
}

func TestUpdateExamForeignCreatorDenied(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Owner", "owner@example.com", model.RoleMediator)
	intruder := seedUser(t, db, "Intruder", "intruder@example.com", model.RoleMediator)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	exam := seedExam(t, db, owner.ID, 1, 30, 1)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	_, err := svc.UpdateExam(intruder.ID, model.RoleMediator, exam.ID, dto.ExamUpdateDTO{Title: strPtr("Hijacked")})
	if !errors.Is(err, ErrNotExamOwner) {
		t.Fatalf("err = %v, want ErrNotExamOwner", err)
	}

	// Admin can edit anyone's exam.
	if _, err := svc.UpdateExam(admin.ID, model.RoleAdmin, exam.ID, dto.ExamUpdateDTO{Title: strPtr("Admin edit")}); err != nil {
		t.Fatalf("UpdateExam as admin: %v", err)
	}
}

func TestDeleteExamRemovesQuestions(t *testing.T) {
	db := newTestDB(t)
	mediator := seedUser(t, db, "Mediator", "med@example.com", model.RoleMediator)
	exam := seedExam(t, db, mediator.ID, 1, 30, 3)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	if err := svc.DeleteExam(mediator.ID, model.RoleMediator, exam.ID); err != nil {
		t.Fatalf("DeleteExam: %v", err)
	}

	if _, err := svc.GetExam(exam.ID); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound after delete", err)
	}

	var questions int64
	if err := db.Model(&model.Question{}).Where("exam_id = ?", exam.ID).Count(&questions).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if questions != 0 {
		t.Fatalf("question count after delete = %d, want 0", questions)
	}
}

func TestDeleteExamUnknownID(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)

	svc := NewAdminExamService(repository.NewExamRepository(db), db)

	if err := svc.DeleteExam(admin.ID, model.RoleAdmin, 9999); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound", err)
	}
}
