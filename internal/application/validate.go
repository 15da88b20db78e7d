package application

import (
	"fmt"
	"net/mail"

	"github.com/blitzhq/taskboard/internal/domain/apperr"
)

// check examines a single field value and returns a violation message, or ""
// when the value passes.
type check func(field, value string) string

// fieldRule binds a payload field to its ordered list of checks.
type fieldRule struct {
	field  string
	value  string
	checks []check
}

// validate runs the rules in declared order and returns an InvalidRequest
// failure carrying the first violation's message. Violations are never
// aggregated; the first applicable check wins.
func validate(rules []fieldRule) *apperr.Error {
	for _, r := range rules {
		for _, c := range r.checks {
			if msg := c(r.field, r.value); msg != "" {
				return apperr.Invalid(msg)
			}
		}
	}
	return nil
}

func required(field, value string) string {
	if value == "" {
		return fmt.Sprintf("%q is required", field)
	}
	return ""
}

func validEmail(field, value string) string {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return fmt.Sprintf("%q must be a valid email", field)
	}
	return ""
}

func minLength(n int) check {
	return func(field, value string) string {
		if len(value) < n {
			return fmt.Sprintf("%q length must be at least %d characters long", field, n)
		}
		return ""
	}
}

func validateRegister(in RegisterInput) *apperr.Error {
	return validate([]fieldRule{
		{field: "name", value: in.Name, checks: []check{required}},
		{field: "email", value: in.Email, checks: []check{required, validEmail}},
		{field: "password", value: in.Password, checks: []check{required, minLength(6)}},
	})
}

func validateLogin(in LoginInput) *apperr.Error {
	return validate([]fieldRule{
		{field: "email", value: in.Email, checks: []check{required, validEmail}},
		{field: "password", value: in.Password, checks: []check{required, minLength(6)}},
	})
}

func validateTaskCreate(in CreateTaskInput) *apperr.Error {
	return validate([]fieldRule{
		{field: "name", value: in.Name, checks: []check{required}},
		{field: "description", value: in.Description, checks: []check{required}},
		{field: "status", value: in.Status, checks: []check{required}},
	})
}

// validateTaskEdit only requires a status string; the status enum is not
// re-checked on edit, matching the creation-only enum rule.
func validateTaskEdit(in EditTaskInput) *apperr.Error {
	return validate([]fieldRule{
		{field: "status", value: in.Status, checks: []check{required}},
	})
}
