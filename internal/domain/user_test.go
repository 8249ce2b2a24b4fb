package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUser_Age(t *testing.T) {
	tests := []struct {
		name  string
		dob   time.Time
		today time.Time
		want  int
	}{
		{"day before birthday", date(2000, 8, 20), date(2025, 8, 19), 24},
		{"on birthday", date(2000, 8, 20), date(2025, 8, 20), 25},
		{"day after birthday", date(2000, 8, 20), date(2025, 8, 21), 25},
		{"earlier month", date(2000, 8, 20), date(2025, 3, 1), 24},
		{"later month", date(2000, 8, 20), date(2025, 12, 1), 25},
		{"same year", date(2025, 1, 1), date(2025, 8, 20), 0},
		{"feb 29 birth, non-leap year before feb 28", date(2004, 2, 29), date(2025, 2, 27), 20},
		{"feb 29 birth, non-leap year march", date(2004, 2, 29), date(2025, 3, 1), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob := tt.dob
			u := &User{DateOfBirth: &dob}
			got, ok := u.Age(tt.today)
			if !ok {
				t.Fatalf("Age() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Age(%v) with dob %v = %d, want %d", tt.today, tt.dob, got, tt.want)
			}
		})
	}
}

func TestUser_Age_NoDateOfBirth(t *testing.T) {
	u := &User{}
	if _, ok := u.Age(date(2025, 8, 20)); ok {
		t.Error("Age() ok = true for user without date of birth, want false")
	}
}

func TestUser_IsBirthday(t *testing.T) {
	tests := []struct {
		name  string
		dob   time.Time
		today time.Time
		want  bool
	}{
		{"exact birthday", date(2000, 8, 20), date(2025, 8, 20), true},
		{"different day", date(2000, 8, 20), date(2025, 8, 21), false},
		{"different month", date(2000, 8, 20), date(2025, 7, 20), false},
		{"feb 29 birth matches feb 28 in non-leap year", date(2004, 2, 29), date(2025, 2, 28), true},
		{"feb 29 birth matches feb 29 in leap year", date(2004, 2, 29), date(2024, 2, 29), true},
		{"feb 29 birth does not match feb 28 in leap year", date(2004, 2, 29), date(2024, 2, 28), false},
		{"feb 28 birth matches feb 28 in leap year", date(2000, 2, 28), date(2024, 2, 28), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob := tt.dob
			u := &User{DateOfBirth: &dob}
			if got := u.IsBirthday(tt.today); got != tt.want {
				t.Errorf("IsBirthday(%v) with dob %v = %v, want %v", tt.today, tt.dob, got, tt.want)
			}
		})
	}
}

func TestUser_IsBirthday_NoDateOfBirth(t *testing.T) {
	u := &User{}
	if u.IsBirthday(date(2025, 8, 20)) {
		t.Error("IsBirthday() = true for user without date of birth, want false")
	}
}
