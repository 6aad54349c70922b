package utility

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// base36 alphabet used for generated passwords
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether plain matches the stored bcrypt hash.
func ComparePassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// RandomPassword returns a random lowercase alphanumeric string of length n.
// Used when a staff account is created without an explicit password.
func RandomPassword(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			out[i] = passwordAlphabet[i%len(passwordAlphabet)]
			continue
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out)
}
