package form

import "github.com/aliquis/aliquis-web/internal/models"

// StatusClass is the style tag attached to a status message.
type StatusClass string

const (
	ClassNone    StatusClass = ""
	ClassPrimary StatusClass = "primary"
	ClassInfo    StatusClass = "info"
	ClassSuccess StatusClass = "success"
	ClassWarning StatusClass = "warning"
	ClassDanger  StatusClass = "danger"
)

var statusClasses = map[StatusClass]struct{}{
	ClassNone:    {},
	ClassPrimary: {},
	ClassInfo:    {},
	ClassSuccess: {},
	ClassWarning: {},
	ClassDanger:  {},
}

// ParseStatusClass reports whether s is exactly one of the known classes.
func ParseStatusClass(s string) (StatusClass, bool) {
	c := StatusClass(s)
	_, ok := statusClasses[c]
	return c, ok
}

// Record is the set of fields backing one on-screen form.
type Record struct {
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"` // sign-up only

	// Profile only.
	Description string   `json:"description,omitempty"`
	NewEmail    string   `json:"new_email,omitempty"`
	IsActive    bool     `json:"is_active"`
	Grants      []string `json:"grants,omitempty"`

	StatusMessage      string      `json:"status_message"`
	StatusMessageClass StatusClass `json:"status_message_class"`
	IsLoading          bool        `json:"is_loading"`

	// FieldErrors are the per-field reasons the account service gave for
	// refusing the last submission.
	FieldErrors []models.FieldError `json:"field_errors,omitempty"`

	// Edits counts field mutations; Seq is the last submission issued.
	Edits uint64 `json:"edits"`
	Seq   uint64 `json:"seq"`
}

// DisplayNameValue is the effective display name.
func (r Record) DisplayNameValue() string {
	return DeriveDisplayName(r.DisplayName, r.FirstName, r.Surname)
}

// UsernameValue is the effective username.
func (r Record) UsernameValue() string {
	return DeriveUsername(r.Username, r.FirstName, r.Surname)
}

// Clear returns an empty record that keeps the submission counters, so that
// responses to requests issued before the reset are still recognized.
func Clear(r Record) Record {
	return Record{Edits: r.Edits + 1, Seq: r.Seq}
}
