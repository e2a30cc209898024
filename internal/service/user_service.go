package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages accounts. Users are created and deleted, never
// mutated; deleting a user also removes the exams they created and those
// exams' questions.
type UserService interface {
	CreateUser(role string, req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	BulkCreateStudents(req dto.UserBulkCreateDTO) ([]dto.UserResponseDTO, error)
	ListUsers(role string) ([]dto.UserResponseDTO, error)
	DeleteUser(userID uint) error
}

type userService struct {
	userRepo repository.UserRepository
	db       *gorm.DB // transactions for bulk create and cascading delete
}

func NewUserService(userRepo repository.UserRepository, db *gorm.DB) UserService {
	return &userService{userRepo: userRepo, db: db}
}

func (s *userService) CreateUser(role string, req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	user, err := buildUser(role, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("CreateUser: insert failed")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

// BulkCreateStudents inserts all accounts in one transaction: either the
// whole batch commits or none of it does.
func (s *userService) BulkCreateStudents(req dto.UserBulkCreateDTO) ([]dto.UserResponseDTO, error) {
	users := make([]model.User, 0, len(req.Users))
	for _, u := range req.Users {
		user, err := buildUser(model.RoleStudent, u)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&users).Error
	})
	if err != nil {
		log.Error().Err(err).Int("count", len(users)).Msg("BulkCreateStudents: batch insert failed")
		return nil, fmt.Errorf("database error creating students: %w", err)
	}

	dtos := make([]dto.UserResponseDTO, len(users))
	for i := range users {
		if err := copier.Copy(&dtos[i], &users[i]); err != nil {
			return nil, fmt.Errorf("error preparing response data: %w", err)
		}
	}
	return dtos, nil
}

func (s *userService) ListUsers(role string) ([]dto.UserResponseDTO, error) {
	var (
		users []model.User
		err   error
	)
	if role == "" {
		users, err = s.userRepo.FindAll()
	} else {
		users, err = s.userRepo.FindByRole(role)
	}
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("ListUsers: repository error")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	dtos := make([]dto.UserResponseDTO, len(users))
	for i := range users {
		if err := copier.Copy(&dtos[i], &users[i]); err != nil {
			return nil, fmt.Errorf("error preparing response data: %w", err)
		}
	}
	return dtos, nil
}

// DeleteUser removes the account together with every exam it created and
// the questions of those exams, in one transaction. Submissions are kept:
// they are historical records, not owned by the user row.
func (s *userService) DeleteUser(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error loading user: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var examIDs []uint
		if err := tx.Model(&model.Exam{}).Where("created_by = ?", userID).Pluck("id", &examIDs).Error; err != nil {
			return fmt.Errorf("error listing exams of user: %w", err)
		}
		if len(examIDs) > 0 {
			if err := tx.Where("exam_id IN ?", examIDs).Delete(&model.Question{}).Error; err != nil {
				return fmt.Errorf("error deleting questions: %w", err)
			}
			if err := tx.Delete(&model.Exam{}, examIDs).Error; err != nil {
				return fmt.Errorf("error deleting exams: %w", err)
			}
		}
		return tx.Delete(&model.User{}, userID).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("DeleteUser: cascade delete failed")
		return err
	}

	log.Info().Uint("userID", userID).Msg("User deleted with owned exams")
	return nil
}

func buildUser(role string, req dto.UserCreateDTO) (*model.User, error) {
	switch role {
	case model.RoleAdmin, model.RoleMediator, model.RoleStudent:
	default:
		return nil, fmt.Errorf("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}
