package form

import (
	"errors"
	"fmt"
)

// ErrUnknownForm is returned by ParseKind for an unknown form name.
var ErrUnknownForm = errors.New("unknown form")

// Kind names one of the forms a session edits.
type Kind string

const (
	SignUp  Kind = "sign-up"
	Profile Kind = "profile"
	// Confirm only carries the outcome of the activation calls. It has no
	// fields and is never valid for submission.
	Confirm Kind = "confirm"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case SignUp, Profile, Confirm:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// Valid applies the predicate matching the form kind.
func (k Kind) Valid(r Record) bool {
	switch k {
	case SignUp:
		return IsSignUpValid(r)
	case Profile:
		return IsProfileValid(r)
	}
	return false
}

var kindOps = map[Kind]map[Op]bool{
	SignUp: {
		OpFirstName: true, OpSurname: true, OpDisplayName: true,
		OpEmail: true, OpUsername: true, OpPassword: true,
	},
	Profile: {
		OpFirstName: true, OpSurname: true, OpDisplayName: true,
		OpEmail: true, OpDescription: true, OpNewEmail: true,
		OpClearNewEmail: true,
	},
}

// Accepts reports whether the form has the field op updates.
func (k Kind) Accepts(op Op) bool {
	return kindOps[k][op]
}
