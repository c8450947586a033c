package cli

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/dmitrijs2005/gophledger/internal/common"
)

// describe turns an error into the message shown to the user. Unknown
// usernames and wrong passwords read the same.
func describe(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "Interrupted."
	case errors.Is(err, common.ErrEmptyInput):
		return "Please enter a value."
	case errors.Is(err, common.ErrInvalidInput):
		return "Please fill in username and password."
	case errors.Is(err, common.ErrInvalidNumber):
		return "Invalid value. Enter a number."
	case errors.Is(err, common.ErrUserAlreadyExists):
		return "User already exists."
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, common.ErrNoSession):
		return "Please log in first."
	case errors.Is(err, common.ErrDigestUnavailable):
		return "Password hashing is not available on this system."
	case errors.Is(err, common.ErrStorageFailure):
		return "Storage error, nothing was changed. Please try again."
	default:
		return "Error: " + err.Error()
	}
}

// formatValue prints v in plain decimal notation, switching to exponent
// notation only for very large or very small magnitudes.
func formatValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
