// Package validation checks add-form input before it is allowed into the
// store. Every field is checked independently and all violations are
// reported together.
package validation

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/userlist/internal/client/models"
)

const (
	MsgFirstNameRequired  = "First name is required"
	MsgFirstNameHasNumber = "First name should not contain numbers"
	MsgLastNameRequired   = "Last name is required"
	MsgLastNameHasNumber  = "Last name should not contain numbers"
	MsgCompanyRequired    = "Company name is required"
	MsgRoleRequired       = "Role is required"
	MsgCountryRequired    = "Country is required"
)

// FieldErrors maps a field to its message. Fields without an error are
// absent.
type FieldErrors map[models.Field]string

func (e FieldErrors) Get(f models.Field) string {
	return e[f]
}

// Clear drops the error for f, as happens when the user edits that field.
func (e FieldErrors) Clear(f models.Field) {
	delete(e, f)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Fields returns the fields with errors in form order.
func (e FieldErrors) Fields() []models.Field {
	out := make([]models.Field, 0, len(e))
	for _, f := range models.Fields {
		if _, ok := e[f]; ok {
			out = append(out, f)
		}
	}
	if len(out) < len(e) {
		var extra []string
		for f := range e {
			if !known(f) {
				extra = append(extra, string(f))
			}
		}
		sort.Strings(extra)
		for _, f := range extra {
			out = append(out, models.Field(f))
		}
	}
	return out
}

func (e FieldErrors) Error() string {
	fields := e.Fields()
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, "; ")
}

func known(f models.Field) bool {
	for _, k := range models.Fields {
		if k == f {
			return true
		}
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ValidateField returns the message for value in field f, or "" when the
// value is acceptable. The required check wins over the digit check.
func ValidateField(f models.Field, value string) string {
	switch f {
	case models.FieldFirstName:
		if blank(value) {
			return MsgFirstNameRequired
		}
		if hasDigit(value) {
			return MsgFirstNameHasNumber
		}
	case models.FieldLastName:
		if blank(value) {
			return MsgLastNameRequired
		}
		if hasDigit(value) {
			return MsgLastNameHasNumber
		}
	case models.FieldCompanyName:
		if blank(value) {
			return MsgCompanyRequired
		}
	case models.FieldRole:
		if blank(value) {
			return MsgRoleRequired
		}
	case models.FieldCountry:
		if blank(value) {
			return MsgCountryRequired
		}
	}
	return ""
}

// Validate checks every field of c. ok is true iff errs is empty.
func Validate(c models.Candidate) (ok bool, errs FieldErrors) {
	errs = FieldErrors{}
	for _, f := range models.Fields {
		if msg := ValidateField(f, c.Get(f)); msg != "" {
			errs[f] = msg
		}
	}
	return errs.Empty(), errs
}
