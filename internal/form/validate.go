package form

import (
	"regexp"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9.+-]+@[a-zA-Z\d-]+(\.[a-zA-Z\d-]+)+$`)
	usernameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_.]+$`)
)

// EmailPattern returns the expression email addresses must match.
func EmailPattern() string { return emailRegexp.String() }

// UsernamePattern returns the expression effective usernames must match.
func UsernamePattern() string { return usernameRegexp.String() }

// IsSignUpValid reports whether r can be submitted as a new account.
func IsSignUpValid(r Record) bool {
	return IsProfileValid(r) && utf8.RuneCountInString(r.Password) >= MinPasswordLength
}

// IsProfileValid reports whether r can be submitted as a profile update.
func IsProfileValid(r Record) bool {
	return r.FirstName != "" &&
		r.Surname != "" &&
		r.DisplayNameValue() != "" &&
		emailRegexp.MatchString(r.Email) &&
		usernameRegexp.MatchString(r.UsernameValue())
}
