package service

import (
	"errors"
	"testing"

	"github.com/favorite-plug/api/internal/config"
)

func TestValidatePasswordEmptyPolicyAcceptsAnything(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should accept anything, got %v", err)
	}
}

func TestValidatePasswordRules(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireNumber: true,
	}

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no upper", password: "abcdefg1", wantErr: true},
		{name: "no digit", password: "Abcdefgh", wantErr: true},
		{name: "valid", password: "Abcdefg1", wantErr: false},
		{name: "unicode counts runes", password: "Pässwör1", wantErr: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(policy, tc.password)
			if tc.wantErr {
				if !errors.Is(err, ErrWeakPassword) {
					t.Fatalf("want ErrWeakPassword got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("want ok got %v", err)
			}
		})
	}
}

func TestValidatePasswordSpecialCharacter(t *testing.T) {
	policy := config.PasswordPolicyConfig{RequireSpecial: true}

	if err := validatePassword(policy, "abc123"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("no special: want ErrWeakPassword got %v", err)
	}
	if err := validatePassword(policy, "abc!123"); err != nil {
		t.Fatalf("with special: want ok got %v", err)
	}
}
