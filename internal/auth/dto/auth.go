package dto

import (
	authdomain "insightflo-backend/internal/auth/domain"
	"insightflo-backend/pkg/token"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AuthResponse struct {
	User   *authdomain.Profile `json:"user"`
	Tokens *token.Pair         `json:"tokens"`
}
