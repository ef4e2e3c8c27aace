package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/jwt"
	"storefront-be/internal/models"
	"storefront-be/internal/password"
	"storefront-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Identity(ctx context.Context, userID int64) (*models.UserResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     password.Hasher
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher password.Hasher, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// normalizeEmail makes email lookups case-insensitive
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account and logs it in
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// Check if user already exists
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// A concurrent insert of the same email fails here on the unique
	// constraint and is reported as an internal error.
	user, err := s.userRepo.Create(ctx, email, hashedPassword, req.Name)
	if err != nil {
		return nil, err
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    models.NewUserResponse(user),
	}, nil
}

// Login authenticates a user and returns user info with JWT token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, apperrors.ErrNotFound) {
		// Burn the same bcrypt work as a real comparison
		s.hasher.Verify(req.Password, s.hasher.DummyHash())
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    models.NewUserResponse(user),
	}, nil
}

// Identity resolves the public profile of a token subject
func (s *authService) Identity(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	identity := models.NewUserResponse(user)
	return &identity, nil
}
