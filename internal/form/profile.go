package form

import "github.com/aliquis/aliquis-web/internal/models"

// InitFromUser loads a fetched account into a profile record. A display name
// equal to the default "first surname" is not stored, so it keeps following
// name edits.
func InitFromUser(r Record, u models.User) Record {
	r.FirstName = Name(u.FirstName)
	r.Surname = Name(u.Surname)
	r.DisplayName = Trim(u.DisplayName)
	if r.DisplayName == r.FirstName+" "+r.Surname {
		r.DisplayName = ""
	}
	r.Email = Trim(u.Email)
	r.Username = Trim(u.Username)
	r.Description = Trim(u.Description)
	r.IsActive = u.IsActive
	return r
}

// ClearUser empties the identity fields of a profile record.
func ClearUser(r Record) Record {
	r.FirstName = ""
	r.Surname = ""
	r.DisplayName = ""
	r.Email = ""
	r.Username = ""
	return r
}

// ToUser is the inverse of InitFromUser, with derived values filled in.
func ToUser(r Record) models.User {
	return models.User{
		FirstName:   r.FirstName,
		Surname:     r.Surname,
		DisplayName: r.DisplayNameValue(),
		Email:       r.Email,
		Username:    r.UsernameValue(),
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// ToSignUp builds the sign-up request body from r.
func ToSignUp(r Record) models.SignUpRequest {
	return models.SignUpRequest{
		FirstName:   r.FirstName,
		Surname:     r.Surname,
		DisplayName: r.DisplayNameValue(),
		Email:       r.Email,
		Username:    r.UsernameValue(),
		Password:    r.Password,
	}
}

func SetGrants(r Record, grants []string) Record {
	r.Grants = append([]string(nil), grants...)
	return r
}

func ClearGrants(r Record) Record {
	r.Grants = nil
	return r
}
