// Package models holds the server-side representation of stored users.
package models

import "strings"

type Company struct {
	Name  string `json:"name" bson:"name"`
	Title string `json:"title" bson:"title"`
}

type Address struct {
	Country string `json:"country" bson:"country"`
}

// User is a stored user record. ID is assigned by the storage backend.
type User struct {
	ID        string  `json:"id" bson:"-"`
	FirstName string  `json:"firstName" bson:"firstName"`
	LastName  string  `json:"lastName" bson:"lastName"`
	Company   Company `json:"company" bson:"company"`
	Address   Address `json:"address" bson:"address"`
}

// Complete reports whether every required string is non-blank. This is the
// storage schema rule shared by all backends.
func (u User) Complete() bool {
	for _, v := range []string{u.FirstName, u.LastName, u.Company.Name, u.Company.Title, u.Address.Country} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
