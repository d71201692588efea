package services

import "context"

// AuthSvcFacade verifies the operator credential and issues session tokens.
type AuthSvcFacade interface {
	// Login checks the username/password pair and returns a signed JWT on
	// success.
	Login(ctx context.Context, username, password string) (string, error)
}
