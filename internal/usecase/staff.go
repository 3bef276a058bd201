package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/pkg/auth"
)

// StaffUseCase guards the worker pages with a shared password and session tokens.
type StaffUseCase struct {
	gate   *auth.StaffGate
	tokens auth.Strategy
}

// NewStaffUseCase constructs StaffUseCase.
func NewStaffUseCase(gate *auth.StaffGate, tokens auth.Strategy) *StaffUseCase {
	return &StaffUseCase{gate: gate, tokens: tokens}
}

// Login exchanges the staff password for a session token.
func (u *StaffUseCase) Login(_ context.Context, password string) (string, error) {
	if err := u.gate.Verify(password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return "", domainErrors.ErrUnauthorized
		}
		return "", err
	}
	return u.tokens.IssueToken(auth.StaffSubject)
}

// Authorize checks a session token. Everything passes when no password is configured.
func (u *StaffUseCase) Authorize(token string) error {
	if !u.gate.Required() {
		return nil
	}
	if token == "" {
		return domainErrors.ErrUnauthorized
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil || claims.Subject != auth.StaffSubject {
		return domainErrors.ErrUnauthorized
	}
	return nil
}
