package auth

import (
	"strings"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

// bcrypt truncates passwords beyond 72 bytes; reject instead of
// silently accepting a weaker credential.
const maxPasswordBytes = 72

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) < 3:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short (min 3)"})
	case len(i.Username) > 32:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long (max 32)"})
	}

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case !looksLikeEmail(i.Email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	case len(i.Email) > 254:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < 8:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 8)"})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long (max 72)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// looksLikeEmail is a cheap structural check: one "@" with non-empty
// local part and a dot in the domain. Real validation happens when the
// address is used; this only catches obvious typos.
func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	dom := s[at+1:]
	dot := strings.IndexByte(dom, '.')
	return dot > 0 && dot < len(dom)-1 && !strings.ContainsAny(s, " \t")
}
