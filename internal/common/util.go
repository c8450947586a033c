package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to drop passwords read from the terminal once they are no longer
// needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
