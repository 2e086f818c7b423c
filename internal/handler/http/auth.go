package http

import (
	"encoding/json"
	"net/http"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/auth"
	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/response"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	AdminLogin(w http.ResponseWriter, r *http.Request)
	LiveToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// AdminLogin implements AuthHandler
func (h *authHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.AdminLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LiveToken implements AuthHandler. Issues a short-lived token for the SSE
// stream, which authenticates via query parameter.
func (h *authHandlerImpl) LiveToken(w http.ResponseWriter, r *http.Request) {
	token, expiresIn, err := h.jwtService.GenerateLiveToken()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}
