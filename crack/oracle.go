// Package crack recovers the key of a captured ciphertext by exhaustive
// search: candidate keys are enumerated over a fixed alphabet up to a maximum
// length, each candidate is used to decrypt the whole stream on a compute
// backend, and the result is accepted as soon as it looks like plaintext.
package crack

// Plausible reports whether data looks like recovered plaintext: every byte
// must be printable ASCII or common whitespace. An empty buffer is accepted
// vacuously; callers who consider a zero-length ciphertext meaningless must
// guard that case themselves.
func Plausible(data []byte) bool {
	for _, c := range data {
		if !plausibleByte(c) {
			return false
		}
	}
	return true
}

func plausibleByte(c byte) bool {
	if c >= 0x20 && c <= 0x7e {
		return true
	}
	switch c {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
