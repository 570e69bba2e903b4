package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	passwords := []string{"secret", "pa$$w0rd with spaces", "üñïçødé-пароль", strings.Repeat("a", 72)}

	for _, password := range passwords {
		hashed, err := HashPassword(password, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("HashPassword(%q): %v", password, err)
		}
		if !VerifyPassword(hashed, password) {
			t.Errorf("expected %q to verify against its own hash", password)
		}
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hashed, err := HashPassword("correct-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyPassword(hashed, "wrong-password") {
		t.Error("wrong password verified")
	}
}

func TestVerifyTruncatesBeyond72Bytes(t *testing.T) {
	long := strings.Repeat("x", 80)
	alsoLong := strings.Repeat("x", 72) + "ZZZZZZZZ"

	hashLong, err := HashPassword(long, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	hashAlsoLong, err := HashPassword(alsoLong, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	// identical within the first 72 bytes, so both verify both ways
	if !VerifyPassword(hashLong, alsoLong) {
		t.Error("candidate differing only past byte 72 did not verify")
	}
	if !VerifyPassword(hashAlsoLong, long) {
		t.Error("original did not verify against the candidate's hash")
	}

	differsEarly := strings.Repeat("x", 71) + "Y" + strings.Repeat("x", 8)
	if VerifyPassword(hashLong, differsEarly) {
		t.Error("password differing within the first 72 bytes verified")
	}
}

func TestVerifyFailsClosed(t *testing.T) {
	hashed, err := HashPassword("secret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	cases := []struct {
		name  string
		hash  string
		plain string
	}{
		{"empty candidate", hashed, ""},
		{"empty stored hash", "", "secret"},
		{"both empty", "", ""},
		{"malformed stored hash", "not-a-bcrypt-hash", "secret"},
	}

	for _, tc := range cases {
		if VerifyPassword(tc.hash, tc.plain) {
			t.Errorf("%s: expected false", tc.name)
		}
	}
}
