package models

// User is the account record served by GET /api/user/{username} and sent
// back on PUT.
type User struct {
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// SignUpRequest is the JSON body for POST /sign-up on the account API.
type SignUpRequest struct {
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// FieldError is one entry of the "errors" list the account API returns
// when it rejects a form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rejected is the body of a refused sign-up, login or update.
type Rejected struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
