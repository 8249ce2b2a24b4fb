package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/domain"
	"blog-service/internal/validator"
)

const testBcryptCost = 4

func validRegistration() domain.RegistrationForm {
	return domain.RegistrationForm{
		Username:    "alice",
		Email:       "alice@example.com",
		FirstName:   "Alice",
		LastName:    "Smith",
		DateOfBirth: "1990-06-15",
		Password1:   "s3cret-pass",
		Password2:   "s3cret-pass",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users, validator.NewValidator(), testBcryptCost)

		user, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.Active)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		require.NotNil(t, user.DateOfBirth)
		assert.Equal(t, 1990, user.DateOfBirth.Year())
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users, validator.NewValidator(), testBcryptCost)

		form := validRegistration()
		form.Password2 = "different"

		_, err := svc.Register(ctx, form)
		require.Error(t, err)

		ve, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Equal(t, domain.MsgPasswordMismatch, ve["password2"].Error())
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users, validator.NewValidator(), testBcryptCost)

		_, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		_, err = svc.Register(ctx, validRegistration())
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("date of birth is optional", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users, validator.NewValidator(), testBcryptCost)

		form := validRegistration()
		form.DateOfBirth = ""

		user, err := svc.Register(ctx, form)
		require.NoError(t, err)
		assert.Nil(t, user.DateOfBirth)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewAuthService(users, validator.NewValidator(), testBcryptCost)

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "s3cret-pass")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		for _, u := range users.users {
			u.Active = false
		}
		defer func() {
			for _, u := range users.users {
				u.Active = true
			}
		}()

		_, err := svc.Login(ctx, "alice", "s3cret-pass")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})
}
