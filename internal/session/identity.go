package session

import (
	"regexp"
	"strings"

	"github.com/abhisek/bizcheck/internal/errs"
)

// Identity form field names used in validation errors.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
)

// emailPattern is a loose local@domain.tld shape check, not RFC 5322.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateIdentity checks the identity form. It returns a *errs.ValidationError
// listing every offending field, or nil.
func ValidateIdentity(firstName, lastName, email string) error {
	fields := make(map[string]string)

	if strings.TrimSpace(firstName) == "" {
		fields[FieldFirstName] = "First name is required"
	}

	switch {
	case strings.TrimSpace(email) == "":
		fields[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(email):
		fields[FieldEmail] = "Please enter a valid email address"
	}

	if len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return nil
}
