package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCaseWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "upper", in: "JOHNNY", want: "Johnny"},
		{name: "lower", in: "doé", want: "Doé"},
		{name: "accented upper", in: "DOÉ", want: "Doé"},
		{name: "hyphenated", in: "jean-PIERRE", want: "Jean-Pierre"},
		{name: "spaces kept", in: "van  der BERG", want: "Van  Der Berg"},
		{name: "leading separators", in: "--ann", want: "--Ann"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCaseWords(tt.in))
		})
	}
}

func TestTitleCaseWords_Idempotent(t *testing.T) {
	inputs := []string{"", "JOHN", "jean-pierre", " mc donald ", "ÉLODIE o'neil", "a-b-c", "\tx\ny"}
	for _, in := range inputs {
		once := TitleCaseWords(in)
		assert.Equal(t, once, TitleCaseWords(once), "input %q", in)
	}
}

func TestSlugifyUsername(t *testing.T) {
	assert.Equal(t, "jdo", SlugifyUsername("J-doé"))
	assert.Equal(t, "jdo", SlugifyUsername("  J-Doé  "))
	assert.Equal(t, "john_doe42", SlugifyUsername("John_Doe42"))
	assert.Equal(t, "jdoe", SlugifyUsername("j.doe"))
	assert.Equal(t, "", SlugifyUsername("   "))
	assert.Equal(t, "jdo", SlugifyUsername(SlugifyUsername("J-doé")))
}

func TestName(t *testing.T) {
	assert.Equal(t, "Johnny", Name("  JOHNNY   "))
	assert.Equal(t, "Doé", Name("  DOÉ "))
	assert.Equal(t, "", Name("  "))
}
