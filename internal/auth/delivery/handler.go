package delivery

import (
	"errors"
	"log/slog"
	"net/http"

	authdomain "insightflo-backend/internal/auth/domain"
	authdto "insightflo-backend/internal/auth/dto"
	"insightflo-backend/internal/auth/usecase"
	"insightflo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles auth-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// SignUp registers a new user
// POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req authdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, string(authdomain.CodeValidationFailed), err.Error())
		return
	}

	result, err := h.authUsecase.SignUp(&req)
	if err != nil {
		writeAuthError(c, "signup", err)
		return
	}

	response.OK(c, http.StatusCreated, result)
}

// SignIn authenticates a user with email and password
// POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req authdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, string(authdomain.CodeValidationFailed), err.Error())
		return
	}

	result, err := h.authUsecase.SignIn(&req)
	if err != nil {
		writeAuthError(c, "signin", err)
		return
	}

	response.OK(c, http.StatusOK, result)
}

// RefreshToken exchanges a refresh token for a fresh token pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, string(authdomain.CodeValidationFailed), err.Error())
		return
	}

	pair, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		writeAuthError(c, "refresh", err)
		return
	}

	response.OK(c, http.StatusOK, pair)
}

// Profile returns the authenticated user's public profile
// GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		response.Fail(c, http.StatusUnauthorized, string(authdomain.CodeAuthenticationRequired), "authentication required")
		return
	}

	profile, err := h.authUsecase.GetProfile(userID)
	if err != nil {
		writeAuthError(c, "profile", err)
		return
	}

	response.OK(c, http.StatusOK, profile)
}

// writeAuthError maps expected auth failures to their HTTP status. Unexpected
// faults are logged with context and returned as an opaque 500.
func writeAuthError(c *gin.Context, op string, err error) {
	var authErr *authdomain.AuthError
	if errors.As(err, &authErr) {
		response.Fail(c, statusForCode(authErr.Code), string(authErr.Code), authErr.Message)
		return
	}

	slog.Error("auth operation failed", "op", op, "path", c.Request.URL.Path, "error", err)
	response.Fail(c, http.StatusInternalServerError, string(authdomain.CodeInternalError), "internal server error")
}

func statusForCode(code authdomain.ErrorCode) int {
	switch code {
	case authdomain.CodeValidationFailed, authdomain.CodeWeakPassword:
		return http.StatusBadRequest
	case authdomain.CodeInvalidCredentials, authdomain.CodeInvalidToken, authdomain.CodeAuthenticationRequired:
		return http.StatusUnauthorized
	case authdomain.CodeEmailAlreadyExists:
		return http.StatusConflict
	case authdomain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
