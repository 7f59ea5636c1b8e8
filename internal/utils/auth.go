package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost matches the salt rounds the user records were
// originally hashed with; raising it invalidates no existing hashes but
// slows registration.
const passwordHashCost = 8

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hashPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashPassword), []byte(password)) == nil
}
