package usecase

import (
	authdomain "insightflo-backend/internal/auth/domain"
	authdto "insightflo-backend/internal/auth/dto"
	"insightflo-backend/pkg/token"
)

// AuthUsecase orchestrates signup, signin, token refresh and profile reads.
// Expected failures are returned as *domain.AuthError; anything else is an
// unexpected fault for the caller to treat as internal.
type AuthUsecase interface {
	SignUp(req *authdto.SignUpRequest) (*authdto.AuthResponse, error)
	SignIn(req *authdto.SignInRequest) (*authdto.AuthResponse, error)
	RefreshToken(refreshToken string) (*token.Pair, error)
	GetProfile(userID string) (*authdomain.Profile, error)
}
