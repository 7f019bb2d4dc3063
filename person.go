package persona

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

type Repository interface {
	FindByID(id ID) (*Person, error)
	FindByLogin(login string) (*Person, error)
	FindAll() ([]Person, error)
	Store(p *Person) error
	Update(p *Person) error
	Delete(id ID) error
}

// ID identifies a stored person. The zero value marks a person that has
// not been persisted yet and never matches a stored record.
type ID int64

type Person struct {
	ID           ID     `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"passwordHash"`
}

var (
	ErrInvalidLogin    = errors.New("invalid login, length should be 3 - 15 characters")
	ErrInvalidPassword = errors.New("password should contain at least one lowercase letter, one uppercase letter and one digit, and be at least 4 characters long")
	ErrMissingField    = errors.New("login and password can't be empty")
	ErrExistingLogin   = errors.New("login in use")
	ErrNotFound        = errors.New("person not found")
	ErrLoginNotFound   = errors.New("login not found")
)

const (
	minLoginLen    = 3
	maxLoginLen    = 15
	minPasswordLen = 4
)

// Login and password lengths count characters, not bytes, so multibyte
// logins are measured the way a user would count them.
func validateLogin(login string) error {
	if n := utf8.RuneCountInString(login); n < minLoginLen || n > maxLoginLen {
		return ErrInvalidLogin
	}
	return nil
}

// validatePassword enforces the sign-up password policy. The policy is a
// per-rune scan rather than a regexp because the character-class rules
// need lookahead, which regexp does not support.
func validatePassword(password string) error {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if utf8.RuneCountInString(password) < minPasswordLen || !lower || !upper || !digit {
		return ErrInvalidPassword
	}
	return nil
}

func validateCredentials(login, password string) error {
	if err := validateLogin(login); err != nil {
		return err
	}
	return validatePassword(password)
}
