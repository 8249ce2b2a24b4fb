package domain

// RegistrationForm carries the raw registration input before validation.
// DateOfBirth is an optional "2006-01-02" date string.
type RegistrationForm struct {
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Password1   string `json:"password1"`
	Password2   string `json:"password2"`
}

// ArticleForm carries article create/edit input.
type ArticleForm struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CommentForm carries comment input. The article and author are always set
// server-side from the route and session, never from the form.
type CommentForm struct {
	Body string `json:"body"`
}

// ProfileForm carries profile edit input. DateOfBirth is an optional
// "2006-01-02" date string; an empty value leaves the field unchanged.
type ProfileForm struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}
