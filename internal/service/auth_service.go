package service

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moneyman/internal/auth"
	"moneyman/internal/errors"
	"moneyman/internal/model"
	"moneyman/internal/repository"
)

const bcryptCost = 10

// emailPattern accepts local@domain.tld with no whitespace and no extra @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions *auth.SessionService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions *auth.SessionService) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates a new user with a hashed password. Duplicate emails are
// rejected; existing users are never overwritten.
func (s *authService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return errors.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return errors.ErrUserExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login authenticates a user and returns a signed session token. A missing
// user and a wrong password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, errors.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return "", nil, errors.ErrInvalidEmail
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID.String(), user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, user, nil
}
