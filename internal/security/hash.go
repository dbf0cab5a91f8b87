package security

import "golang.org/x/crypto/bcrypt"

// bcryptCost mirrors the work factor used for every stored secret,
// both user passwords and refresh tokens at rest.
const bcryptCost = 12

func HashSecret(value string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(value), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareSecret reports whether value matches the stored hash.
// bcrypt's comparison is constant-time.
func CompareSecret(value, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(value)) == nil
}
