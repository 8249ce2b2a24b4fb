package domain

import "time"

// User represents a registered account in the system.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PasswordHash string     `json:"-"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	Active       bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Age returns the user's age in whole calendar years at the reference date.
// The second return value is false when no date of birth is set. The
// reference date is injected so the computation stays pure.
func (u *User) Age(today time.Time) (int, bool) {
	if u.DateOfBirth == nil {
		return 0, false
	}
	dob := *u.DateOfBirth
	years := today.Year() - dob.Year()
	if monthDayBefore(today, dob) {
		years--
	}
	return years, true
}

// IsBirthday reports whether the reference date falls on the user's birthday.
// A Feb 29 birth date matches Feb 28 in non-leap years. Returns false when no
// date of birth is set.
func (u *User) IsBirthday(today time.Time) bool {
	if u.DateOfBirth == nil {
		return false
	}
	dob := *u.DateOfBirth
	month, day := dob.Month(), dob.Day()
	if month == time.February && day == 29 && !isLeapYear(today.Year()) {
		day = 28
	}
	return today.Month() == month && today.Day() == day
}

// monthDayBefore reports whether a's (month, day) precedes b's (month, day).
func monthDayBefore(a, b time.Time) bool {
	if a.Month() != b.Month() {
		return a.Month() < b.Month()
	}
	return a.Day() < b.Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
