package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for admin flows.
var (
	// ErrInvalidCredentials deliberately covers both "unknown email" and
	// "wrong password" so responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("admin with this email already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// ProfileUpdate carries the optional fields of a profile update. An empty
// string means "leave unchanged"; this is a partial update, not a replace.
type ProfileUpdate struct {
	Username string
	Email    string
	Password string
}

// AdminService handles admin auth logic.
type AdminService struct {
	adminRepo repository.Admins
	tokens    *TokenManager
}

func NewAdminService(repo repository.Admins, tokens *TokenManager) *AdminService {
	return &AdminService{adminRepo: repo, tokens: tokens}
}

// Register hashes the password, persists a new admin and issues a token.
// A duplicate email surfaces as ErrEmailTaken; the store's uniqueness
// constraint is the sole arbiter, so two racing registrations cannot both win.
func (s *AdminService) Register(ctx context.Context, username, email, password string) (*models.Admin, string, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("invalid password: %w", err)
	}

	admin, err := s.adminRepo.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// Login validates credentials and returns the admin with a fresh token.
func (s *AdminService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := verifyPassword(admin.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// GetProfile looks up an admin by id.
func (s *AdminService) GetProfile(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// UpdateProfile applies only the provided fields via read-modify-write and
// always re-issues a token, so every profile response carries a usable one.
func (s *AdminService) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", ErrAdminNotFound
	}

	if upd.Username != "" {
		admin.Username = upd.Username
	}
	if upd.Email != "" {
		admin.Email = upd.Email
	}
	if upd.Password != "" {
		hash, err := hashPassword(upd.Password)
		if err != nil {
			return nil, "", fmt.Errorf("invalid password: %w", err)
		}
		admin.PasswordHash = hash
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ParseToken verifies a bearer token and returns the admin id it carries.
func (s *AdminService) ParseToken(accessToken string) (string, error) {
	return s.tokens.Parse(accessToken)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
