package test

import (
	"math/rand"
	"sync"
	"time"
)

const (
	nameLetters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomName returns a letters-only string with length in [minLen, maxLen].
func RandomName(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return randomFrom(nameLetters, minLen+randomIntn(maxLen-minLen+1))
}

// RandomOrderNumber returns a string shaped like an allocated order number.
// It is not checked against any store.
func RandomOrderNumber() string {
	return randomFrom(numberSymbols, 6)
}

func randomFrom(alphabet string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
