package domain

import (
	"context"
	"errors"
)

// Service runs the self-serve signup flow: derive a tenant from the email
// domain, create it if absent, and attach the user. Success is uniform for
// new and already-registered users so callers cannot probe for account
// existence.
type Service interface {
	Signup(ctx context.Context, req Request) error
}

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	// ErrInvalidEmail is returned when the address does not contain exactly
	// one "@".
	ErrInvalidEmail = errors.New("invalid_email")

	// ErrPublicEmailDomain is returned for consumer email providers; signup
	// requires a work address.
	ErrPublicEmailDomain = errors.New("public_email_domain")
)
