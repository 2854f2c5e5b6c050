package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:00", "18:30", "23:59"}
	invalid := []string{"9:00", "24:00", "09:60", "0900", "09:00:00", "abc", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimezone(t *testing.T) {
	valid := []string{"Asia/Kolkata", "America/New_York", "UTC", "Europe/London"}
	invalid := []string{"Asia/Gotham", "Kolkata", "Local", ""}
	for _, s := range valid {
		if !IsValidTimezone(s) {
			t.Errorf("IsValidTimezone(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimezone(s) {
			t.Errorf("IsValidTimezone(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(0) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("boundary latitudes should be valid")
	}
	if IsValidLatitude(90.01) || IsValidLatitude(-90.01) {
		t.Error("out-of-range latitudes should be invalid")
	}
	if !IsValidLongitude(180) || !IsValidLongitude(-180) {
		t.Error("boundary longitudes should be valid")
	}
	if IsValidLongitude(180.5) || IsValidLongitude(-180.5) {
		t.Error("out-of-range longitudes should be invalid")
	}
}
