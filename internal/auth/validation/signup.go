// Package validation holds the declarative per-field rules applied to
// inbound requests before any business logic runs.
package validation

import (
	"regexp"
	"strings"

	"github.com/datharnu/povBackend/internal/auth"
)

var (
	fullNameShape = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailShape    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[\W_]`)
)

// signupRule is one field-level check against normalized input.
type signupRule struct {
	field   string
	message string
	ok      func(in auth.SignupInput) bool
}

// Every rule runs; a field that fails several checks reports each of
// them, in declaration order.
var signupRules = []signupRule{
	{
		field:   "fullname",
		message: "Fullname is required",
		ok:      func(in auth.SignupInput) bool { return in.FullName != "" },
	},
	{
		field:   "fullname",
		message: "Fullname must be between 2 and 100 characters",
		ok:      func(in auth.SignupInput) bool { return len(in.FullName) >= 2 && len(in.FullName) <= 100 },
	},
	{
		field:   "fullname",
		message: "Fullname can only contain letters and spaces",
		ok:      func(in auth.SignupInput) bool { return fullNameShape.MatchString(in.FullName) },
	},
	{
		field:   "email",
		message: "Email is required",
		ok:      func(in auth.SignupInput) bool { return in.Email != "" },
	},
	{
		field:   "email",
		message: "Invalid email address",
		ok:      func(in auth.SignupInput) bool { return emailShape.MatchString(in.Email) },
	},
	{
		field:   "password",
		message: "Password is required",
		ok:      func(in auth.SignupInput) bool { return in.Password != "" },
	},
	{
		field:   "password",
		message: "Password must be at least 8 characters long",
		ok:      func(in auth.SignupInput) bool { return len(in.Password) >= 8 },
	},
	{
		field:   "password",
		message: "Password must include uppercase, lowercase, number, and special character",
		ok: func(in auth.SignupInput) bool {
			return hasLower.MatchString(in.Password) &&
				hasUpper.MatchString(in.Password) &&
				hasDigit.MatchString(in.Password) &&
				hasSpecial.MatchString(in.Password)
		},
	},
	{
		field:   "confirmPassword",
		message: "Please confirm your password",
		ok:      func(in auth.SignupInput) bool { return in.ConfirmPassword != "" },
	},
	{
		field:   "confirmPassword",
		message: "Passwords do not match",
		ok:      func(in auth.SignupInput) bool { return in.ConfirmPassword == in.Password },
	},
}

// Signup normalizes the submission (trims every field, lowercases the
// email) and evaluates the full rule set without short-circuiting.
// The normalized input is returned alongside any violations.
func Signup(in auth.SignupInput) (auth.SignupInput, []auth.FieldError) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = auth.NormalizeEmail(in.Email)
	in.Password = strings.TrimSpace(in.Password)
	in.ConfirmPassword = strings.TrimSpace(in.ConfirmPassword)

	var violations []auth.FieldError
	for _, rule := range signupRules {
		if !rule.ok(in) {
			violations = append(violations, auth.FieldError{
				Field:   rule.field,
				Message: rule.message,
			})
		}
	}

	return in, violations
}
