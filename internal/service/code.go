package service

import (
	"math/rand"
	"strings"
)

// Reservation codes are 6 characters over the base36 alphabet, stored and
// displayed uppercase, matched case-insensitively.
const (
	codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	codeLength   = 6
)

func newReservationCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return strings.ToUpper(string(b))
}
