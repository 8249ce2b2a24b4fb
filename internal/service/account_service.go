package service

import (
	"context"
	"fmt"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/repository"
	"blog-service/internal/validator"
)

type accountService struct {
	users     repository.UserRepository
	validator *validator.Validator
	now       Clock
}

// NewAccountService creates a new AccountService. The clock supplies the
// reference date for age and birthday computation.
func NewAccountService(users repository.UserRepository, v *validator.Validator, now Clock) AccountService {
	if now == nil {
		now = SystemClock
	}
	return &accountService{
		users:     users,
		validator: v,
		now:       now,
	}
}

// Profile returns the user's profile with derived age and birthday fields.
func (s *accountService) Profile(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	view := &ProfileView{User: user}
	today := s.now()
	if age, ok := user.Age(today); ok {
		view.Age = &age
	}
	view.IsBirthday = user.IsBirthday(today)

	return view, nil
}

// UpdateProfile validates and applies profile changes. An empty date of birth
// clears the stored value.
func (s *accountService) UpdateProfile(ctx context.Context, userID string, form domain.ProfileForm) (*domain.User, error) {
	if err := s.validator.ValidateProfile(&form); err != nil {
		return nil, err
	}

	dob, err := validator.ParseDate(form.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("parse date of birth: %w", err)
	}

	user, err := s.users.UpdateProfile(ctx, userID, form.FirstName, form.LastName, dob)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

// RemoveUser deletes an account. Only staff may remove accounts; the
// database cascades the user's articles and comments.
func (s *accountService) RemoveUser(ctx context.Context, actor *domain.User, userID string) error {
	if actor == nil || !actor.IsStaff {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info("user removed", "user_id", userID, "actor_id", actor.ID)

	return nil
}
