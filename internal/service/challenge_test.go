package service

import (
	"testing"

	"athletehub/internal/utils"
)

func TestNewChallengeCodeIsTokenSuffix(t *testing.T) {
	issuer := HOTPChallengeIssuer{}
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		token, code, err := issuer.NewChallenge()
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != CodeLength || !utils.IsDigits(code) {
			t.Fatalf("code %q is not a 6-digit value", code)
		}
		if ShortCode(token) != code {
			t.Fatalf("code %q is not the suffix of token %q", code, token)
		}
		if len(token) <= CodeLength {
			t.Fatalf("token %q carries no random prefix", token)
		}
		if seen[token] {
			t.Fatal("token repeated")
		}
		seen[token] = true
	}
}

func TestShortCode(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"abc123456", "123456"},
		{"123456", "123456"},
		{"12", "12"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ShortCode(tc.token); got != tc.want {
			t.Errorf("ShortCode(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}
