package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"

	bearerPrefix = "Bearer "
)

// Claims is the payload embedded in both token kinds. Refresh tokens carry a
// unique ID (jti) in RegisteredClaims.ID, reserved for a future revocation
// store.
type Claims struct {
	Email string `json:"email"`
	Kind  string `json:"kind"`
	jwt.RegisteredClaims
}

// Pair holds an access/refresh token pair. The two tokens are signed with
// separate secrets so that compromise of one key cannot mint the other kind.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Issuer creates and verifies signed token pairs.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	audience      string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

type Config struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	Audience      string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewIssuer(cfg Config) *Issuer {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = 720 * time.Hour
	}
	return &Issuer{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		issuer:        cfg.Issuer,
		audience:      cfg.Audience,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// Issue signs a fresh token pair for the given user.
func (i *Issuer) Issue(userID, email string) (*Pair, error) {
	now := time.Now()

	accessClaims := Claims{
		Email: email,
		Kind:  KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(i.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshClaims := Claims{
		Email: email,
		Kind:  KindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshTTL)),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(i.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccess parses and validates an access token.
func (i *Issuer) VerifyAccess(tokenString string) (*Claims, error) {
	return i.verify(tokenString, i.accessSecret, KindAccess)
}

// VerifyRefresh parses and validates a refresh token. The jti is available on
// the returned Claims.ID.
func (i *Issuer) VerifyRefresh(tokenString string) (*Claims, error) {
	return i.verify(tokenString, i.refreshSecret, KindRefresh)
}

func (i *Issuer) verify(tokenString string, secret []byte, kind string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Kind mismatch is a hard failure even with a valid signature.
	if claims.Kind != kind {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearer strips the Bearer scheme from an Authorization header value
// and returns the raw token unmodified.
func ExtractBearer(headerValue string) (string, error) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return "", ErrInvalidHeader
	}
	return headerValue[len(bearerPrefix):], nil
}
