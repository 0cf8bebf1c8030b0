package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignUp() Record {
	return Record{
		FirstName: "John",
		Surname:   "Doé",
		Email:     "john.doe@example.org",
		Password:  "jdoe1234",
	}
}

func TestIsSignUpValid(t *testing.T) {
	assert.True(t, IsSignUpValid(validSignUp()))

	tests := []struct {
		name   string
		modify func(r *Record)
	}{
		{name: "missing first name", modify: func(r *Record) { r.FirstName = "" }},
		{name: "missing surname", modify: func(r *Record) { r.Surname = "" }},
		{name: "empty email", modify: func(r *Record) { r.Email = "" }},
		{name: "wrong email", modify: func(r *Record) { r.Email = "john" }},
		{name: "email without dot in domain", modify: func(r *Record) { r.Email = "john@localhost" }},
		{name: "username starting with digit", modify: func(r *Record) { r.Username = "1john" }},
		{name: "username too short", modify: func(r *Record) { r.Username = "j" }},
		{name: "empty password", modify: func(r *Record) { r.Password = "" }},
		{name: "short password", modify: func(r *Record) { r.Password = "jdoe1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validSignUp()
			tt.modify(&r)
			assert.False(t, IsSignUpValid(r))
		})
	}
}

func TestIsSignUpValid_PasswordCountsRunes(t *testing.T) {
	r := validSignUp()
	r.Password = "éééééé"
	assert.True(t, IsSignUpValid(r))
}

func TestIsProfileValid(t *testing.T) {
	r := validSignUp()
	r.Password = ""
	assert.True(t, IsProfileValid(r))
	assert.False(t, IsSignUpValid(r))

	r.Email = "john"
	assert.False(t, IsProfileValid(r))
}

func TestPatterns(t *testing.T) {
	assert.Equal(t, `^[a-z][a-z0-9_.]+$`, UsernamePattern())
	assert.Contains(t, EmailPattern(), "@")
}

func TestKind(t *testing.T) {
	k, err := ParseKind("sign-up")
	assert.NoError(t, err)
	assert.Equal(t, SignUp, k)

	_, err = ParseKind("login")
	assert.ErrorIs(t, err, ErrUnknownForm)

	r := validSignUp()
	r.Password = ""
	assert.False(t, SignUp.Valid(r))
	assert.True(t, Profile.Valid(r))
	assert.False(t, Confirm.Valid(r))
}

func TestKind_Accepts(t *testing.T) {
	assert.True(t, SignUp.Accepts(OpPassword))
	assert.False(t, Profile.Accepts(OpPassword))
	assert.True(t, Profile.Accepts(OpDescription))
	assert.False(t, SignUp.Accepts(OpNewEmail))
	assert.False(t, Profile.Accepts(OpUsername))
	assert.True(t, Profile.Accepts(OpClearNewEmail))
	assert.False(t, SignUp.Accepts(OpClearNewEmail))
	assert.False(t, Confirm.Accepts(OpFirstName))
	assert.False(t, Kind("login").Accepts(OpEmail))
}
