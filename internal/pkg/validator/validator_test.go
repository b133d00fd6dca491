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

func TestIsValidSlug(t *testing.T) {
	valid := []string{"happy-paws", "shop123", "a-b-c"}
	invalid := []string{"ab", "Has-Upper", "with space", "under_score", ""}
	for _, slug := range valid {
		if !IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	if _, ok := IsValidTimeOfDay("09:30"); !ok {
		t.Error(`IsValidTimeOfDay("09:30") = false, want true`)
	}
	if _, ok := IsValidTimeOfDay("25:00"); ok {
		t.Error(`IsValidTimeOfDay("25:00") = true, want false`)
	}
	if _, ok := IsValidTimeOfDay("9:30am"); ok {
		t.Error(`IsValidTimeOfDay("9:30am") = true, want false`)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"01012345678", "+821012345678", "010-1234-5678"}
	invalid := []string{"123", "phone", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}
