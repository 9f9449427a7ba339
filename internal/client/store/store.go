// Package store holds the client's user records: the master collection and
// the displayed collection derived from it by the current search term. The
// Store is the only writer of either collection.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userlist/internal/client/idgen"
	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/client/validation"
)

const maxIDAttempts = 16

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrIDExhausted means the generator kept returning ids already in use.
	ErrIDExhausted = errors.New("could not generate a unique id")
)

// ValidationError carries the per-field messages of a rejected add.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Fields.Error())
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type Store struct {
	mu        sync.RWMutex
	ids       idgen.Generator
	master    []models.User
	displayed []models.User
	term      string
}

func New(ids idgen.Generator) *Store {
	return &Store{
		ids:       ids,
		master:    []models.User{},
		displayed: []models.User{},
	}
}

// Add validates c and, when valid, prepends the new record to both
// collections whatever the current search term is. A rejected candidate
// leaves the store unchanged and returns a *ValidationError.
func (s *Store) Add(c models.Candidate) (models.User, error) {
	if ok, errs := validation.Validate(c); !ok {
		return models.User{}, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freeID()
	if err != nil {
		return models.User{}, err
	}

	u := c.ToUser(id)
	s.master = prepend(s.master, u)
	s.displayed = prepend(s.displayed, u)
	return u, nil
}

func (s *Store) freeID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *Store) indexOf(id string) int {
	for i, u := range s.master {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func prepend(list []models.User, u models.User) []models.User {
	out := make([]models.User, 0, len(list)+1)
	out = append(out, u)
	return append(out, list...)
}

func without(list []models.User, id string) []models.User {
	out := make([]models.User, 0, len(list))
	for _, u := range list {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

// Delete removes the record with id from both collections. It reports
// whether a record was removed; an unknown id is a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return false
	}
	s.master = without(s.master, id)
	s.displayed = without(s.displayed, id)
	return true
}

// ReplaceAll overwrites both collections with users and clears the search
// term.
func (s *Store) ReplaceAll(users []models.User) {
	master := make([]models.User, len(users))
	copy(master, users)
	displayed := make([]models.User, len(users))
	copy(displayed, users)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.master = master
	s.displayed = displayed
	s.term = ""
}

// Search sets the term and recomputes the displayed collection from master.
func (s *Store) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.term = term
	s.displayed = Filter(s.master, term)
}

func (s *Store) Displayed() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.displayed)
}

func (s *Store) Master() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.master)
}

func (s *Store) Term() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// Len returns the sizes of the master and displayed collections.
func (s *Store) Len() (master, displayed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.master), len(s.displayed)
}

func clone(list []models.User) []models.User {
	out := make([]models.User, len(list))
	copy(out, list)
	return out
}

// Filter returns the records of master matching term, in master order. An
// empty term matches every record.
func Filter(master []models.User, term string) []models.User {
	folded := strings.ToLower(term)
	out := make([]models.User, 0, len(master))
	for _, u := range master {
		if Matches(u, folded) {
			out = append(out, u)
		}
	}
	return out
}

// Matches reports whether any searchable field of u contains the already
// lower-cased term.
func Matches(u models.User, foldedTerm string) bool {
	if foldedTerm == "" {
		return true
	}
	for _, v := range []string{u.FirstName, u.Company.Name, u.Company.Title, u.Address.Country} {
		if strings.Contains(strings.ToLower(v), foldedTerm) {
			return true
		}
	}
	return false
}
