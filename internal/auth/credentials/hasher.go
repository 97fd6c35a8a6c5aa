package credentials

import "golang.org/x/crypto/bcrypt"

// Cost is deliberately above bcrypt.DefaultCost; hashing is meant to
// be expensive.
const Cost = 12

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with the stored hash.
// Malformed hashes verify as false rather than erroring.
func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
