package service

import "regexp"

var (
	loginPattern    = regexp.MustCompile(`^[A-Za-z0-9]{4,}$`)
	passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
)

// ValidateLogin reports ErrInvalidLogin unless the login is at least 4
// alphanumeric characters.
func ValidateLogin(login string) error {
	if !loginPattern.MatchString(login) {
		return ErrInvalidLogin
	}
	return nil
}

// ValidatePassword reports ErrInvalidPassword unless the password is at
// least 8 alphanumeric characters containing a lower-case letter, an
// upper-case letter and a digit.
func ValidatePassword(password string) error {
	if !passwordPattern.MatchString(password) {
		return ErrInvalidPassword
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return ErrInvalidPassword
	}
	return nil
}
