package service

import (
	"crypto/subtle"
	"time"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

const (
	minAge            = 18
	minPasswordLength = 6
)

// Messages shown verbatim on the registration forms.
const (
	msgUnderage         = "You must be at least 18 years old to register."
	msgPasswordMismatch = "Passwords do not match."
	msgPasswordTooShort = "Password must be at least 6 characters long."
	msgInvalidAdminCode = "Invalid admin code. Please contact the system administrator."
)

// AgeOn returns the number of whole years between dob and on. The year is
// decremented when the birthday has not yet been reached in on's year.
func AgeOn(dob, on time.Time) int {
	age := on.Year() - dob.Year()
	if on.Month() < dob.Month() || (on.Month() == dob.Month() && on.Day() < dob.Day()) {
		age--
	}
	return age
}

func checkAge(dob, on time.Time) error {
	if AgeOn(dob, on) < minAge {
		return domain.Invalid("dob", msgUnderage)
	}
	return nil
}

func checkPassword(password, confirm string) error {
	if password != confirm {
		return domain.Invalid("confirmPassword", msgPasswordMismatch)
	}
	if len(password) < minPasswordLength {
		return domain.Invalid("password", msgPasswordTooShort)
	}
	return nil
}

func checkAdminCode(given, want string) error {
	if want == "" || subtle.ConstantTimeCompare([]byte(given), []byte(want)) != 1 {
		return domain.Invalid("adminCode", msgInvalidAdminCode)
	}
	return nil
}
