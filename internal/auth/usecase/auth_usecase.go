package usecase

import (
	"errors"
	"regexp"
	"unicode/utf8"

	authdomain "insightflo-backend/internal/auth/domain"
	authdto "insightflo-backend/internal/auth/dto"
	"insightflo-backend/internal/auth/repository"
	"insightflo-backend/pkg/password"
	"insightflo-backend/pkg/token"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	issuer   *token.Issuer
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *password.Hasher, issuer *token.Issuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

func (u *authUsecase) SignUp(req *authdto.SignUpRequest) (*authdto.AuthResponse, error) {
	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	if err := password.ValidateStrength(req.Password); err != nil {
		return nil, authdomain.NewAuthError(authdomain.CodeWeakPassword, err.Error())
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.NewAuthError(authdomain.CodeEmailAlreadyExists, "email already registered")
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:        req.Email,
		PasswordHash: hash,
		Nickname:     req.Nickname,
	}
	if err := u.userRepo.Create(user); err != nil {
		// Two concurrent signups race on the unique constraint; the store
		// rejects the second insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, authdomain.NewAuthError(authdomain.CodeEmailAlreadyExists, "email already registered")
		}
		return nil, err
	}

	tokens, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: user.Profile(), Tokens: tokens}, nil
}

func (u *authUsecase) SignIn(req *authdto.SignInRequest) (*authdto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, authdomain.NewAuthError(authdomain.CodeValidationFailed, "email and password are required")
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password produce the identical error so the
	// response cannot be used to enumerate accounts.
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials()
	}
	if !u.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, authdomain.ErrInvalidCredentials()
	}

	tokens, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: user.Profile(), Tokens: tokens}, nil
}

func (u *authUsecase) RefreshToken(refreshToken string) (*token.Pair, error) {
	claims, err := u.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, authdomain.ErrInvalidToken()
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	// A deleted user is indistinguishable from a bad token.
	if user == nil {
		return nil, authdomain.ErrInvalidToken()
	}

	// Both tokens are rotated; the presented refresh token is not extended.
	return u.issuer.Issue(user.ID, user.Email)
}

func (u *authUsecase) GetProfile(userID string) (*authdomain.Profile, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.NewAuthError(authdomain.CodeNotFound, "user not found")
	}
	return user.Profile(), nil
}

func validateSignUp(req *authdto.SignUpRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return authdomain.NewAuthError(authdomain.CodeValidationFailed, "email: invalid email format")
	}
	if req.Password == "" {
		return authdomain.NewAuthError(authdomain.CodeValidationFailed, "password: password is required")
	}
	if utf8.RuneCountInString(req.Nickname) < 2 {
		return authdomain.NewAuthError(authdomain.CodeValidationFailed, "nickname: nickname must be at least 2 characters")
	}
	return nil
}
