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

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"1", "042", "1234567890"}
	invalid := []string{"", "12345678901", "12a4", "12-34", " 12"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	from, to, errs := ValidateDateRange("2024-03-01", "2024-03-30")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !from.Before(to) {
		t.Errorf("expected from %v before to %v", from, to)
	}

	_, _, errs = ValidateDateRange("2024-03-30", "2024-03-01")
	if len(errs) == 0 {
		t.Error("expected error for reversed range")
	}

	_, _, errs = ValidateDateRange("not-a-date", "2024-03-01")
	if len(errs) == 0 {
		t.Error("expected error for malformed date_from")
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "hr.clerk_1", "a-b-c"}
	invalid := []string{"ab", "", "has space", strings51()}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func strings51() string {
	s := ""
	for i := 0; i < 51; i++ {
		s += "a"
	}
	return s
}
