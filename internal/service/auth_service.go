package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
	"blog-service/internal/validator"
)

type authService struct {
	users      repository.UserRepository
	validator  *validator.Validator
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, v *validator.Validator, bcryptCost int) AuthService {
	return &authService{
		users:      users,
		validator:  v,
		bcryptCost: bcryptCost,
	}
}

// Register validates the form, hashes the password, and creates the account.
// Username and email uniqueness is enforced by the database; a conflict
// surfaces as domain.ErrUserExists.
func (s *authService) Register(ctx context.Context, form domain.RegistrationForm) (*domain.User, error) {
	if err := s.validator.ValidateRegistration(&form); err != nil {
		metrics.ObserveRegistration("invalid")
		return nil, err
	}

	dob, err := validator.ParseDate(form.DateOfBirth)
	if err != nil {
		metrics.ObserveRegistration("invalid")
		return nil, fmt.Errorf("parse date of birth: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     form.Username,
		Email:        form.Email,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		PasswordHash: string(hash),
		DateOfBirth:  dob,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.ObserveRegistration("conflict")
			return nil, err
		}
		metrics.ObserveRegistration("error")
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.ObserveRegistration("success")
	logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// Login verifies the credentials. Both an unknown username and a wrong
// password return domain.ErrBadCredentials so the two cases are
// indistinguishable to a caller.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !user.Active {
		return nil, domain.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}

	return user, nil
}
