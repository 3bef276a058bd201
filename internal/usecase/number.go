package usecase

import (
	"crypto/rand"
	"math/big"
)

const (
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength   = 6
	maxNumberAttempts   = 10
)

// numberGenerator produces candidate order numbers.
type numberGenerator func() (string, error)

// GenerateOrderNumber draws a random order number from A-Z0-9.
func GenerateOrderNumber() (string, error) {
	limit := big.NewInt(int64(len(orderNumberAlphabet)))
	buf := make([]byte, orderNumberLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = orderNumberAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// IsOrderNumber reports whether s has the shape of an allocated order number.
func IsOrderNumber(s string) bool {
	if len(s) != orderNumberLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
