// Package service holds the application's business logic, between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"wenda/internal/middleware"
	"wenda/internal/models"
	"wenda/internal/repository"
	"wenda/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Username        string
	Nickname        string
	Password        string
	ConfirmPassword string
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Register creates a user and its profile in a single transaction. Uniqueness
// of the username is enforced by the database index alone; there is no
// existence pre-check, so two concurrent registrations cannot both succeed.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidateNickname(in.Nickname); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidatePasswordConfirmation(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Nickname: in.Nickname,
		Password: hash,
		Status:   models.UserStatusActive,
	}
	profile := &models.UserProfile{Username: in.Username}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves credentials to a user. Unknown usernames and wrong
// passwords both surface as INVALID_CREDENTIALS so the response does not leak
// which of the two failed.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(user.Password, password) {
		return nil, models.NewInvalidCredentialsError()
	}
	if !user.IsActive() {
		return nil, models.NewAccountDisabledError()
	}
	return user, nil
}

// RecordLogin appends a login history row. It is best effort: a write failure
// is logged and never fails the login itself.
func (s *AccountService) RecordLogin(ctx context.Context, user *models.User, loginType, ip, userAgent string) {
	entry := &models.UserLoginHistory{
		Username:  user.Username,
		LoginType: loginType,
		IP:        ip,
		UserAgent: userAgent,
		UserID:    user.ID,
	}
	if err := s.userRepo.RecordLogin(ctx, entry); err != nil && middleware.Logger != nil {
		middleware.Logger.WarnContext(ctx, "Failed to record login history",
			"user_id", user.ID,
			"error", err,
		)
	}
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored hash. New rows
// carry bcrypt hashes; rows migrated from the previous system carry unsalted
// hex(sha256) digests, which are still accepted so those accounts keep
// working until their next password change.
func VerifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(stored), []byte(digest)) == 1
}
