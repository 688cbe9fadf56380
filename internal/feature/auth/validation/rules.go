// Package validation implements the declarative input rules for the auth
// screens. Rules are evaluated synchronously against a candidate input and
// produce either "valid" or a mapping from field name to a human-readable
// message for the UI to display.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tags carry the rules,
// message mapping happens in fieldMessage.
var validate = validator.New(validator.WithRequiredStructEnabled())

// SignupInput is the candidate input for the signup form.
type SignupInput struct {
	Name            string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// LoginInput is the candidate input for the login form.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ProfileInput is the candidate input for a profile update.
// Empty fields mean "keep the current value" and are not validated.
type ProfileInput struct {
	Name  string `validate:"omitempty,min=2"`
	Email string `validate:"omitempty,email"`
}

// Errors maps a field name to the message shown next to that field.
// An empty map means the input is valid.
type Errors map[string]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool { return len(e) == 0 }

// ValidateSignup checks a signup input against the rules:
// name required/min 2, email required/format, password required/min 6,
// confirmPassword required/equal to password.
func ValidateSignup(in SignupInput) Errors {
	return collect(validate.Struct(in))
}

// ValidateLogin checks a login input against the rules:
// email required/format, password required/min 6.
func ValidateLogin(in LoginInput) Errors {
	return collect(validate.Struct(in))
}

// ValidateProfile checks a profile update. Only non-empty fields are checked.
func ValidateProfile(in ProfileInput) Errors {
	return collect(validate.Struct(in))
}

// collect turns validator errors into the field→message map.
// Only the first failure per field is reported, matching the form behavior.
func collect(err error) Errors {
	out := Errors{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-field error (should not happen for plain structs); surface it
		// under a generic key rather than dropping it.
		out["_"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		field := fieldKey(fe.StructField())
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = fieldMessage(fe)
	}
	return out
}

// fieldKey converts a struct field name to the camelCase key the UI uses.
func fieldKey(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "ConfirmPassword":
		return "confirmPassword"
	default:
		return structField
	}
}

// fieldMessage maps a failed rule to its fixed user-facing message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be at least 2 characters"
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email format"
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters"
	case "ConfirmPassword":
		if fe.Tag() == "required" {
			return "Please confirm your password"
		}
		return "Passwords must match"
	default:
		return "Invalid value"
	}
}
