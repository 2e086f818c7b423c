package auth

import (
	"context"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/auth"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwtService        jwt.Service
	adminPasswordHash string
}

func NewAuthService(jwtService jwt.Service, adminPasswordHash string) auth.AuthService {
	return &AuthServiceImpl{
		jwtService:        jwtService,
		adminPasswordHash: adminPasswordHash,
	}
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.AdminLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AdminLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(req.Password)); err != nil {
		return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return auth.AdminLoginResponse{}, err
	}

	return auth.AdminLoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
