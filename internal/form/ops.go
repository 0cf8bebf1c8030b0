package form

import (
	"errors"
	"fmt"
)

// ErrUnknownOp is returned by ParseOp for a name outside the field set.
var ErrUnknownOp = errors.New("unknown form field")

// Op names one mutation of a Record.
type Op int

const (
	OpFirstName Op = iota + 1
	OpSurname
	OpDisplayName
	OpEmail
	OpUsername
	OpPassword
	OpDescription
	OpNewEmail
	OpClearNewEmail
	OpClear
	OpStatusMessage
	OpClearStatusMessage
	OpLoading
	OpNotLoading
)

// fieldOps maps wire field names to the ops that update them.
// clear_new_email takes no value.
var fieldOps = map[string]Op{
	"first_name":   OpFirstName,
	"surname":      OpSurname,
	"display_name": OpDisplayName,
	"email":        OpEmail,
	"username":     OpUsername,
	"password":     OpPassword,
	"description":  OpDescription,
	"new_email":    OpNewEmail,

	"clear_new_email": OpClearNewEmail,
}

var opNames = map[Op]string{
	OpFirstName:          "first_name",
	OpSurname:            "surname",
	OpDisplayName:        "display_name",
	OpEmail:              "email",
	OpUsername:           "username",
	OpPassword:           "password",
	OpDescription:        "description",
	OpNewEmail:           "new_email",
	OpClearNewEmail:      "clear_new_email",
	OpClear:              "clear",
	OpStatusMessage:      "status_message",
	OpClearStatusMessage: "clear_status_message",
	OpLoading:            "loading",
	OpNotLoading:         "not_loading",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// ParseOp returns the op updating the named field.
func ParseOp(field string) (Op, error) {
	op, ok := fieldOps[field]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, field)
	}
	return op, nil
}

// Mutation is one input event. Class is only read by OpStatusMessage.
type Mutation struct {
	Op    Op
	Value string
	Class string
}

// Apply returns r with m applied. Unknown ops leave r unchanged.
func Apply(r Record, m Mutation) Record {
	switch m.Op {
	case OpFirstName:
		r.FirstName = Name(m.Value)
	case OpSurname:
		r.Surname = Name(m.Value)
	case OpDisplayName:
		r.DisplayName = Trim(m.Value)
	case OpEmail:
		r.Email = Trim(m.Value)
	case OpUsername:
		r.Username = SlugifyUsername(m.Value)
	case OpPassword:
		r.Password = Trim(m.Value)
	case OpDescription:
		r.Description = Trim(m.Value)
	case OpNewEmail:
		r.NewEmail = Trim(m.Value)
	case OpClearNewEmail:
		r.NewEmail = ""
	case OpClear:
		return Clear(r)
	case OpStatusMessage:
		return SetStatusMessage(r, m.Value, m.Class)
	case OpClearStatusMessage:
		return ClearStatusMessage(r)
	case OpLoading:
		return SetLoading(r)
	case OpNotLoading:
		return SetNotLoading(r)
	default:
		return r
	}
	r.Edits++
	return r
}
