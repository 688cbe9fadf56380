package validation

import "unicode"

// Strength classifies a password for UI feedback. It is informational only
// and never blocks signup; the required-validity gate is ValidateSignup.
type Strength string

const (
	// StrengthInvalid means the password does not even reach the weak band.
	StrengthInvalid Strength = "invalid"
	// StrengthWeak means length in [6,8).
	StrengthWeak Strength = "weak"
	// StrengthMedium means length >= 8 with at least one digit.
	StrengthMedium Strength = "medium"
	// StrengthStrong means length >= 8 with a digit, a lowercase letter and an
	// uppercase letter.
	StrengthStrong Strength = "strong"
)

// ClassifyStrength categorizes a password by length and character classes.
// Note the deliberate gap carried over from the original thresholds: a
// password of length >= 8 without a digit is "invalid", not "weak".
func ClassifyStrength(password string) Strength {
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	n := len(password)
	switch {
	case n >= 8 && hasDigit && hasLower && hasUpper:
		return StrengthStrong
	case n >= 8 && hasDigit:
		return StrengthMedium
	case n >= 6 && n < 8:
		return StrengthWeak
	default:
		return StrengthInvalid
	}
}
