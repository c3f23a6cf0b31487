package utils

import "testing"

func TestHashString(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashString("abc"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Jane@Example.com ")
	b := Fingerprint("jane@example.com")
	if a != b {
		t.Errorf("expected case and space insensitive fingerprint, got %s and %s", a, b)
	}
	if len(a) != 12 {
		t.Errorf("expected 12 characters, got %d", len(a))
	}
	if Fingerprint("") != "" {
		t.Error("expected empty fingerprint for empty email")
	}
}
