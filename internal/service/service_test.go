package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/Axolotls/config"
	"github.com/lshigami/Axolotls/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// full schema. MaxOpenConns is pinned to 1 because SQLite does not allow
// concurrent writers on one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Exam{}, &model.Question{}, &model.Submission{}); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{JWTSecret: "test-secret", TokenTTLHrs: 1},
		Exam: config.Exam{TabSwitchLimit: 3, DeadlineGraceSecs: 30},
	}
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := model.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return &user
}

// seedExam inserts an exam with n questions. Question i has options A-D and
// answer "B", so a correct submission answers "B" for every question id.
func seedExam(t *testing.T, db *gorm.DB, creatorID uint, attemptsAllowed, duration, n int) *model.Exam {
	t.Helper()
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.Question{
			Prompt:  fmt.Sprintf("Question %d", i+1),
			Option1: "A",
			Option2: "B",
			Option3: "C",
			Option4: "D",
			Answer:  "B",
		}
	}
	exam := model.Exam{
		Title:           "Seeded Exam",
		Duration:        duration,
		CreatedBy:       creatorID,
		AttemptsAllowed: attemptsAllowed,
		Questions:       questions,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}
	return &exam
}
