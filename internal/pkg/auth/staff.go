package auth

import (
	"errors"
	"fmt"
)

// StaffSubject is the token subject granted to authenticated kitchen staff.
const StaffSubject = "staff"

var ErrInvalidPassword = errors.New("invalid staff password")

// StaffGate checks the shared staff password. The plain password is hashed once and dropped.
type StaffGate struct {
	hasher PasswordHasher
	hash   string
}

// NewStaffGate hashes the configured password. An empty password leaves staff pages open.
func NewStaffGate(hasher PasswordHasher, password string) (*StaffGate, error) {
	gate := &StaffGate{hasher: hasher}
	if password == "" {
		return gate, nil
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash staff password: %w", err)
	}
	gate.hash = hash
	return gate, nil
}

// Required reports whether staff routes need a session.
func (g *StaffGate) Required() bool {
	return g.hash != ""
}

// Verify compares the candidate against the configured password.
func (g *StaffGate) Verify(password string) error {
	if !g.Required() {
		return nil
	}
	if err := g.hasher.Compare(g.hash, password); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
