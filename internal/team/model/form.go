package model

import (
	"net/mail"
	"strings"
)

// RegistrationForm is the raw field set of a team submission, as decoded
// from the multipart form.
type RegistrationForm struct {
	TeamName      string `form:"teamName"`
	Email         string `form:"email"`
	Leader        string `form:"leader"`
	Phone         string `form:"phone"`
	P1            string `form:"p1"`
	P2            string `form:"p2"`
	P3            string `form:"p3"`
	P4            string `form:"p4"`
	TransactionID string `form:"transactionId"`
}

// FieldError names one violated submission rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// rule is one declarative field check.
type rule struct {
	field   string
	message string
	ok      func(f *RegistrationForm) bool
}

func present(value func(f *RegistrationForm) string) func(f *RegistrationForm) bool {
	return func(f *RegistrationForm) bool {
		return strings.TrimSpace(value(f)) != ""
	}
}

// rules is evaluated in order; every rule runs so the caller can report
// all problems at once.
var rules = []rule{
	{"teamName", "Team name is required", present(func(f *RegistrationForm) string { return f.TeamName })},
	{"email", "Valid email required", func(f *RegistrationForm) bool {
		// optional: the authoritative email comes from the principal
		if strings.TrimSpace(f.Email) == "" {
			return true
		}
		_, err := mail.ParseAddress(f.Email)
		return err == nil
	}},
	{"leader", "Leader name required", present(func(f *RegistrationForm) string { return f.Leader })},
	{"phone", "Leader phone number required", present(func(f *RegistrationForm) string { return f.Phone })},
	{"p1", "Player 1 required", present(func(f *RegistrationForm) string { return f.P1 })},
	{"p2", "Player 2 required", present(func(f *RegistrationForm) string { return f.P2 })},
	{"p3", "Player 3 required", present(func(f *RegistrationForm) string { return f.P3 })},
	{"p4", "Player 4 required", present(func(f *RegistrationForm) string { return f.P4 })},
	{"transactionId", "Transaction ID required", present(func(f *RegistrationForm) string { return f.TransactionID })},
}

// Validate evaluates all field rules and returns the ordered violation
// list, empty when the submission is valid.
func (f *RegistrationForm) Validate() []FieldError {
	var violations []FieldError
	for _, r := range rules {
		if !r.ok(f) {
			violations = append(violations, FieldError{Field: r.field, Message: r.message})
		}
	}
	return violations
}

// Registered is the response payload after a successful submission.
type Registered struct {
	TeamName string `json:"team_name"`
	Leader   string `json:"leader"`
	Email    string `json:"email"`
}
