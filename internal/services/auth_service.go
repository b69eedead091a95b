package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haojie/dochub-api/internal/constants"
	"github.com/haojie/dochub-api/internal/logger"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrEmailSendFailed      = errors.New("failed to send verification email")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo     repository.UserRepository
	verification *VerificationService
	mailer       Mailer
	tokens       *TokenService
	superUsers   []string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, verification *VerificationService, mailer Mailer, tokens *TokenService, superUsers []string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		verification: verification,
		mailer:       mailer,
		tokens:       tokens,
		superUsers:   superUsers,
	}
}

// SendVerificationCode generates a fresh code for the email, stores it
// with the configured TTL and mails it. A previously stored code for
// the same email is replaced.
func (s *AuthService) SendVerificationCode(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	code, err := s.verification.GenerateCode()
	if err != nil {
		return err
	}

	if err := s.verification.SaveCode(ctx, email, code); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		logger.Errorw("verification email send failed", "email", email, "error", err)
		return ErrEmailSendFailed
	}

	logger.Infow("verification code sent", "email", email)
	return nil
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Code     string
}

// Register consumes the verification code and creates the user. The
// code is validated before any row is written; a wrong code leaves the
// stored code intact.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if err := s.verification.VerifyCode(ctx, input.Email, input.Code); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:       username,
		Email:          input.Email,
		HashedPassword: string(hashed),
		Nickname:       nicknameFromEmail(input.Email),
		IsSuperuser:    s.isSuperUser(username),
	}

	if err := s.userRepo.CreateWithDefaultRole(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// LoginResult carries the token pair issued at login.
type LoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	IsAdmin bool   `json:"is_admin"`
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.tokens.GenerateTokenPair(user.ID, user.IsSuperuser)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &LoginResult{
		Access:  access,
		Refresh: refresh,
		IsAdmin: user.IsSuperuser,
	}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) isSuperUser(username string) bool {
	for _, name := range s.superUsers {
		if name == username {
			return true
		}
	}
	return false
}

func nicknameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
