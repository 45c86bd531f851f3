package crack

import (
	"bytes"
	"testing"
)

func TestPlausible(t *testing.T) {
	spaces := bytes.Repeat([]byte{0x20}, 64)
	if !Plausible(spaces) {
		t.Fatal("rejected all spaces")
	}

	if Plausible([]byte{0x01}) {
		t.Fatal("accepted a control byte")
	}

	text := []byte("The quick brown fox,\r\n\tjumps over the lazy dog.\v\f")
	if !Plausible(text) {
		t.Fatal("rejected plain english text")
	}

	if Plausible([]byte{'o', 'k', 0x7f}) {
		t.Fatal("accepted DEL")
	}
	if Plausible([]byte("almost fine\x80")) {
		t.Fatal("accepted a high byte")
	}
	if Plausible([]byte{0x00}) {
		t.Fatal("accepted NUL")
	}
}

// an empty buffer passes vacuously; this is documented behavior, not an
// oversight, and callers guard the zero-length case themselves
func TestPlausibleEmpty(t *testing.T) {
	if !Plausible(nil) {
		t.Fatal("rejected nil buffer")
	}
	if !Plausible([]byte{}) {
		t.Fatal("rejected empty buffer")
	}
}
