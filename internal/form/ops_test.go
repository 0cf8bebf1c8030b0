package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Fields(t *testing.T) {
	tests := []struct {
		field string
		value string
		get   func(Record) string
		want  string
	}{
		{field: "first_name", value: "  JOHNNY   ", get: func(r Record) string { return r.FirstName }, want: "Johnny"},
		{field: "surname", value: "  DOÉ ", get: func(r Record) string { return r.Surname }, want: "Doé"},
		{field: "display_name", value: "  J. DOÉ ", get: func(r Record) string { return r.DisplayName }, want: "J. DOÉ"},
		{field: "email", value: "   john  ", get: func(r Record) string { return r.Email }, want: "john"},
		{field: "username", value: "  J-Doé  ", get: func(r Record) string { return r.Username }, want: "jdo"},
		{field: "password", value: "   jdoe1  ", get: func(r Record) string { return r.Password }, want: "jdoe1"},
		{field: "description", value: " hi ", get: func(r Record) string { return r.Description }, want: "hi"},
		{field: "new_email", value: " a@b.co ", get: func(r Record) string { return r.NewEmail }, want: "a@b.co"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			op, err := ParseOp(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.field, op.String())

			r := Apply(Record{}, Mutation{Op: op, Value: tt.value})
			assert.Equal(t, tt.want, tt.get(r))
			assert.Equal(t, uint64(1), r.Edits)

			empty := Apply(r, Mutation{Op: op, Value: "  "})
			assert.Empty(t, tt.get(empty))
		})
	}
}

func TestParseOp_Unknown(t *testing.T) {
	_, err := ParseOp("is_active")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestApply_Clear(t *testing.T) {
	r := validSignUp()
	r.Seq = 3
	r = Apply(r, Mutation{Op: OpClear})
	assert.Empty(t, r.FirstName)
	assert.Empty(t, r.Password)
	assert.Equal(t, uint64(3), r.Seq)
}

func TestApply_StatusAndLoading(t *testing.T) {
	r := Apply(Record{}, Mutation{Op: OpStatusMessage, Value: " saved ", Class: "success"})
	assert.Equal(t, "saved", r.StatusMessage)
	assert.Equal(t, ClassSuccess, r.StatusMessageClass)
	assert.Zero(t, r.Edits)

	r = Apply(r, Mutation{Op: OpLoading})
	assert.True(t, r.IsLoading)
	r = Apply(r, Mutation{Op: OpNotLoading})
	assert.False(t, r.IsLoading)

	r = Apply(r, Mutation{Op: OpClearStatusMessage})
	assert.Empty(t, r.StatusMessage)
}

func TestApply_UnknownOp(t *testing.T) {
	r := validSignUp()
	assert.Equal(t, r, Apply(r, Mutation{Op: Op(99), Value: "x"}))
	assert.Equal(t, "Op(99)", Op(99).String())
}

func TestApply_ClearNewEmail(t *testing.T) {
	op, err := ParseOp("clear_new_email")
	require.NoError(t, err)
	assert.Equal(t, OpClearNewEmail, op)

	r := Apply(Record{NewEmail: "new@example.org"}, Mutation{Op: op, Value: "ignored"})
	assert.Empty(t, r.NewEmail)
	assert.Equal(t, uint64(1), r.Edits)
}
