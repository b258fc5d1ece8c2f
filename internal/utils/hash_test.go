package utils

import "testing"

func TestHashTokenIsDeterministicAndOpaque(t *testing.T) {
	a := HashToken("token-one")
	b := HashToken("token-one")
	c := HashToken("token-two")
	if a != b {
		t.Fatal("same input must hash identically")
	}
	if a == c {
		t.Fatal("different inputs must not collide")
	}
	if a == "token-one" {
		t.Fatal("hash must not echo the token")
	}
}

func TestGenerateRandomTokenLengthAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := GenerateRandomToken(32)
		if err != nil {
			t.Fatal(err)
		}
		if len(token) == 0 {
			t.Fatal("empty token")
		}
		if seen[token] {
			t.Fatal("token repeated")
		}
		seen[token] = true
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Jane.Doe@Univ.EDU ", "jane.doe@univ.edu"},
		{"jane@univ.edu", "jane@univ.edu"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"123456", true},
		{"0", true},
		{"", false},
		{"12a456", false},
		{"12 456", false},
		{"-12345", false},
	}
	for _, tc := range cases {
		if got := IsDigits(tc.in); got != tc.want {
			t.Errorf("IsDigits(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
