package utility

import (
	"strings"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !ComparePassword(hash, "s3cret-pass") {
		t.Error("ComparePassword rejected the correct password")
	}
	if ComparePassword(hash, "wrong-pass") {
		t.Error("ComparePassword accepted a wrong password")
	}
}

func TestRandomPasswordLengthAndAlphabet(t *testing.T) {
	pw := RandomPassword(8)
	if len(pw) != 8 {
		t.Fatalf("expected length 8, got %d", len(pw))
	}
	for _, r := range pw {
		if !strings.ContainsRune(passwordAlphabet, r) {
			t.Errorf("character %q outside the password alphabet", r)
		}
	}
}

func TestRandomPasswordVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		seen[RandomPassword(8)] = true
	}
	if len(seen) < 2 {
		t.Error("five generated passwords were all identical")
	}
}
