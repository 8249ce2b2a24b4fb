package validator

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-service/internal/domain"
)

const (
	maxUsernameLength = 150
	maxTitleLength    = 200
	maxCommentWords   = 500

	// DateLayout is the accepted format for date-of-birth input.
	DateLayout = "2006-01-02"
)

// Validator provides validation for the user-facing forms.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration validates a registration form. Field-level rules run
// first; the password match check only runs once both password fields are
// present, and its error is attached to the second field.
func (v *Validator) ValidateRegistration(f *domain.RegistrationForm) error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Username,
			validation.Required.Error(domain.MsgFieldRequired),
			validation.Length(0, maxUsernameLength).Error("username is too long"),
		),
		validation.Field(&f.Email,
			is.Email.Error("enter a valid email address"),
		),
		validation.Field(&f.DateOfBirth,
			validation.Date(DateLayout).Error("enter a valid date"),
		),
		validation.Field(&f.Password1,
			validation.Required.Error(domain.MsgFieldRequired),
		),
		validation.Field(&f.Password2,
			validation.Required.Error(domain.MsgFieldRequired),
		),
	)
	if err != nil {
		return err
	}

	if f.Password1 != f.Password2 {
		return validation.Errors{
			"password2": validation.NewError("password_mismatch", domain.MsgPasswordMismatch),
		}
	}

	return nil
}

// ValidateArticle validates article create/edit input.
func (v *Validator) ValidateArticle(f *domain.ArticleForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error(domain.MsgFieldRequired),
			validation.Length(0, maxTitleLength).Error("title is too long"),
		),
		validation.Field(&f.Body,
			validation.Required.Error(domain.MsgFieldRequired),
		),
	)
}

// ValidateComment validates comment input.
func (v *Validator) ValidateComment(f *domain.CommentForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Body,
			validation.Required.Error(domain.MsgFieldRequired),
			validation.By(wordCountRule(maxCommentWords)),
		),
	)
}

// ValidateProfile validates profile edit input.
func (v *Validator) ValidateProfile(f *domain.ProfileForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.DateOfBirth,
			validation.Date(DateLayout).Error("enter a valid date"),
		),
	)
}

// ParseDate parses a DateLayout date string. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if len(strings.Fields(s)) > maxWords {
			return validation.NewError("body_too_long", "body exceeds 500 words")
		}
		return nil
	}
}

// FieldErrors flattens a validation error into a field -> message map for
// API responses. Non-validation errors map to a single "non_field" entry.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	if err != nil {
		out["non_field"] = err.Error()
	}
	return out
}
