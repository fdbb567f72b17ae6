package domain

// ErrorCode is the closed set of expected auth failure kinds. The delivery
// layer maps each code to an HTTP status; anything outside this set is an
// internal error.
type ErrorCode string

const (
	CodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword           ErrorCode = "WEAK_PASSWORD"
	CodeEmailAlreadyExists     ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInvalidCredentials     ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken           ErrorCode = "INVALID_TOKEN"
	CodeAuthenticationRequired ErrorCode = "AUTHENTICATION_REQUIRED"
	CodeNotFound               ErrorCode = "NOT_FOUND"
	CodeInternalError          ErrorCode = "INTERNAL_ERROR"
)

// AuthError is an expected business failure. It travels through normal error
// returns and is matched with errors.As at the HTTP boundary.
type AuthError struct {
	Code    ErrorCode
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(code ErrorCode, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// invalidCredentialsMessage is identical for unknown email and wrong password
// so clients cannot enumerate accounts.
const invalidCredentialsMessage = "invalid email or password"

func ErrInvalidCredentials() *AuthError {
	return NewAuthError(CodeInvalidCredentials, invalidCredentialsMessage)
}

func ErrInvalidToken() *AuthError {
	return NewAuthError(CodeInvalidToken, "invalid or expired token")
}
