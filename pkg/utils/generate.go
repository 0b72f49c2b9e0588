package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateOTP draws a numeric code uniformly from [10^(length-1), 10^length - 1],
// so a 6 digit code is never zero-padded.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	high := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	span := new(big.Int).Sub(high, low)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("draw OTP: %w", err)
	}

	return n.Add(n, low).String(), nil
}

// HashOTP returns the hex encoded SHA-256 of code.
func HashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
