package form

// overrideOr returns stored when it is set, and the derived value otherwise.
func overrideOr(stored string, derive func() string) string {
	if stored != "" {
		return stored
	}
	return derive()
}

// DeriveDisplayName returns stored if set, else the first name and surname
// joined by a space, else whichever of the two is present.
func DeriveDisplayName(stored, firstName, surname string) string {
	return overrideOr(stored, func() string {
		return joinNames(firstName, surname)
	})
}

// DeriveUsername returns the slugified stored username if set. Otherwise the
// candidate is the first rune of firstName followed by surname, or whichever
// of the two is present, slugified.
func DeriveUsername(stored, firstName, surname string) string {
	return SlugifyUsername(overrideOr(stored, func() string {
		return usernameCandidate(firstName, surname)
	}))
}

func joinNames(firstName, surname string) string {
	switch {
	case firstName != "" && surname != "":
		return firstName + " " + surname
	case firstName != "":
		return firstName
	default:
		return surname
	}
}

func usernameCandidate(firstName, surname string) string {
	switch {
	case firstName != "" && surname != "":
		return string([]rune(firstName)[:1]) + surname
	case firstName != "":
		return firstName
	default:
		return surname
	}
}
