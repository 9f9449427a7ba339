// Package common defines shared constants and sentinel errors used across
// the client and server layers of userlist. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorIncompleteRecord = errors.New("incomplete user record")
	ErrorDuplicateID      = errors.New("duplicate user id")

	// Configuration errors.
	ErrorUnsupportedBackend = errors.New("unsupported storage backend")
	ErrorUnsupportedOption  = errors.New("unsupported option")
)
