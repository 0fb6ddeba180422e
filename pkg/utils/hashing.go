package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// ComparePasswords reports ErrInvalidCredentials for any mismatch or malformed hash.
func ComparePasswords(hashedPassword string, plainPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
