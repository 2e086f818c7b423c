package auth

import "context"

type AuthService interface {
	// AdminLogin checks the admin console password and issues a session token.
	AdminLogin(ctx context.Context, req AdminLoginRequest) (AdminLoginResponse, error)
}
