package models

// Status is a user-facing message and its style class, as returned by the
// confirm and reactivate endpoints.
type Status struct {
	Msg string `json:"msg"`
	Cls string `json:"cls"`
}
