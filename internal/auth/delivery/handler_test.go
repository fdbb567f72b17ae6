package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "insightflo-backend/internal/auth/domain"
	authdto "insightflo-backend/internal/auth/dto"
	"insightflo-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results so handler tests only exercise the
// HTTP translation layer.
type stubAuthUsecase struct {
	signUpErr  error
	signInErr  error
	refreshErr error
	profileErr error
}

func (s *stubAuthUsecase) SignUp(req *authdto.SignUpRequest) (*authdto.AuthResponse, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	return &authdto.AuthResponse{
		User:   &authdomain.Profile{ID: "user-1", Email: req.Email, Nickname: req.Nickname},
		Tokens: &token.Pair{AccessToken: "at", RefreshToken: "rt"},
	}, nil
}

func (s *stubAuthUsecase) SignIn(req *authdto.SignInRequest) (*authdto.AuthResponse, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return &authdto.AuthResponse{
		User:   &authdomain.Profile{ID: "user-1", Email: req.Email},
		Tokens: &token.Pair{AccessToken: "at", RefreshToken: "rt"},
	}, nil
}

func (s *stubAuthUsecase) RefreshToken(refreshToken string) (*token.Pair, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &token.Pair{AccessToken: "at2", RefreshToken: "rt2"}, nil
}

func (s *stubAuthUsecase) GetProfile(userID string) (*authdomain.Profile, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return &authdomain.Profile{ID: userID, Email: "a@b.com"}, nil
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func handlerRouter(stub *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(stub)
	r.POST("/signup", h.SignUp)
	r.POST("/signin", h.SignIn)
	r.POST("/refresh", h.RefreshToken)
	return r
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestSignUpHandlerSuccess(t *testing.T) {
	r := handlerRouter(&stubAuthUsecase{})

	w := postJSON(r, "/signup", `{"email":"a@b.com","password":"Str0ng#Pass","nickname":"reader"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
			Tokens struct {
				AccessToken string `json:"accessToken"`
			} `json:"tokens"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "a@b.com", body.Data.User.Email)
	assert.Equal(t, "at", body.Data.Tokens.AccessToken)
}

func TestHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubAuthUsecase
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "duplicate email is 409",
			stub:       &stubAuthUsecase{signUpErr: authdomain.NewAuthError(authdomain.CodeEmailAlreadyExists, "email already registered")},
			path:       "/signup",
			body:       `{"email":"a@b.com","password":"Str0ng#Pass","nickname":"reader"}`,
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_ALREADY_EXISTS",
		},
		{
			name:       "weak password is 400",
			stub:       &stubAuthUsecase{signUpErr: authdomain.NewAuthError(authdomain.CodeWeakPassword, "too weak")},
			path:       "/signup",
			body:       `{"email":"a@b.com","password":"weak","nickname":"reader"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "WEAK_PASSWORD",
		},
		{
			name:       "bad credentials are 401",
			stub:       &stubAuthUsecase{signInErr: authdomain.ErrInvalidCredentials()},
			path:       "/signin",
			body:       `{"email":"a@b.com","password":"x"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "bad refresh token is 401",
			stub:       &stubAuthUsecase{refreshErr: authdomain.ErrInvalidToken()},
			path:       "/refresh",
			body:       `{"refreshToken":"bad"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "missing body field is 400",
			stub:       &stubAuthUsecase{},
			path:       "/refresh",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := handlerRouter(tt.stub)
			w := postJSON(r, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}
