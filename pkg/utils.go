package pkg

import (
	"math/rand"
	"time"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codeRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandString returns a short join code for a match.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[codeRand.Intn(len(letters))]
	}
	return string(b)
}
