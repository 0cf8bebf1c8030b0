package form

import "github.com/aliquis/aliquis-web/internal/models"

// SetStatusMessage stores the trimmed message. The class is replaced only
// when its trimmed value is one of the known classes; otherwise the previous
// class stays.
func SetStatusMessage(r Record, msg, cls string) Record {
	r.StatusMessage = Trim(msg)
	if c, ok := ParseStatusClass(Trim(cls)); ok {
		r.StatusMessageClass = c
	}
	return r
}

// ClearStatusMessage empties both the message and its class.
func ClearStatusMessage(r Record) Record {
	r.StatusMessage = ""
	r.StatusMessageClass = ClassNone
	return r
}

// SetFieldErrors replaces the field errors of the last submission. A nil or
// empty list clears them.
func SetFieldErrors(r Record, errs []models.FieldError) Record {
	if len(errs) == 0 {
		r.FieldErrors = nil
		return r
	}
	r.FieldErrors = append([]models.FieldError(nil), errs...)
	return r
}

func SetLoading(r Record) Record {
	r.IsLoading = true
	return r
}

func SetNotLoading(r Record) Record {
	r.IsLoading = false
	return r
}
