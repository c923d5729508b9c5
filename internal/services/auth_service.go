package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/models/response_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *utils.JWTManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *utils.JWTManager) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates the account and returns a signed token. The pre-check on
// the username is advisory; the unique index is the source of truth, so a
// concurrent duplicate insert still comes back as ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	existing, err := s.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Password hashing failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrUsernameTaken
		}
		return nil, utils.ErrDatabaseError
	}

	return s.issueToken(user)
}

// Login deliberately returns the same error for an unknown username and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	match, err := utils.ComparePasswords(user.PasswordHash, request.Password)
	if err != nil || !match {
		return nil, utils.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) issueToken(user *db_models.User) (*response_models.AuthResponse, error) {
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}

	token, err := s.tokens.CreateToken(user.ID, role)
	if err != nil {
		log.Printf("Token signing failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token: token,
		User: response_models.UserSummary{
			ID:       user.ID,
			Username: user.Username,
		},
	}, nil
}
