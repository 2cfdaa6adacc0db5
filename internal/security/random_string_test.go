package security

import (
	"strings"
	"testing"
)

func TestRandomStringUsesOnlyTheGivenAlphabet(t *testing.T) {
	const alphabet = "abc123"

	value, err := RandomString(64, alphabet)
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 64 {
		t.Fatalf("expected length 64, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q is outside the alphabet", char)
		}
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("zero length should yield an empty string, got %q err %v", value, err)
	}
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("negative length must error")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("empty alphabet must error")
	}
}
