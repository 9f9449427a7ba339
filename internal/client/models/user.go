// Package models holds the client-side user record and the add-form shape.
package models

import "strings"

type Company struct {
	Name  string
	Title string
}

type Address struct {
	Country string
}

// User is a record held by the client store. Records are never mutated
// after creation.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Company   Company
	Address   Address
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Field names a form field by its form key.
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldCompanyName Field = "companyName"
	FieldRole        Field = "role"
	FieldCountry     Field = "country"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldCompanyName, FieldRole, FieldCountry}

// Label is the human-readable prompt for f.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First name"
	case FieldLastName:
		return "Last name"
	case FieldCompanyName:
		return "Company name"
	case FieldRole:
		return "Role"
	case FieldCountry:
		return "Country"
	}
	return string(f)
}

// Candidate is the flat add-form input before it becomes a User.
type Candidate struct {
	FirstName   string
	LastName    string
	CompanyName string
	Role        string
	Country     string
}

// Get returns the value of field f.
func (c Candidate) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return c.FirstName
	case FieldLastName:
		return c.LastName
	case FieldCompanyName:
		return c.CompanyName
	case FieldRole:
		return c.Role
	case FieldCountry:
		return c.Country
	}
	return ""
}

// Set assigns v to field f. Unknown fields are ignored.
func (c *Candidate) Set(f Field, v string) {
	switch f {
	case FieldFirstName:
		c.FirstName = v
	case FieldLastName:
		c.LastName = v
	case FieldCompanyName:
		c.CompanyName = v
	case FieldRole:
		c.Role = v
	case FieldCountry:
		c.Country = v
	}
}

// ToUser maps the form onto a record: companyName becomes company.name and
// role becomes company.title.
func (c Candidate) ToUser(id string) User {
	return User{
		ID:        id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Company:   Company{Name: c.CompanyName, Title: c.Role},
		Address:   Address{Country: c.Country},
	}
}
