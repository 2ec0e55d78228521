package utils

import (
	"math/rand"
)

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateConfirmationCode returns a booking reference in the form
// ROME-XXXX, where each X is drawn uniformly from [A-Z0-9]. Codes are
// not checked for uniqueness; collisions over 36^4 possibilities are
// accepted.
func GenerateConfirmationCode() string {
	code := make([]byte, 4)
	for i := range code {
		code[i] = confirmationAlphabet[rand.Intn(len(confirmationAlphabet))]
	}
	return "ROME-" + string(code)
}
