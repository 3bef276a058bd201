package auth

import "time"

// Claims describe a verified session token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}
