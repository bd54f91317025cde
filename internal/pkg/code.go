package pkg

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateConfirmationCode returns a fresh random one-time code.
func GenerateConfirmationCode() string {
	return uuid.NewString()
}

// HashConfirmationCode hashes code for storage; cost 0 selects bcrypt.DefaultCost.
func HashConfirmationCode(code string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyConfirmationCode compares code against a stored hash.
func VerifyConfirmationCode(hash, code string) bool {
	if hash == "" || code == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
