package util

import "math/rand/v2"

const letters = "abcdefghijklmnopqrstuvwxyz"

// RandomLetters returns n random lowercase ASCII letters. Used for the
// placeholder owner/language tags that keep URL-sourced entry IDs unique.
func RandomLetters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}
