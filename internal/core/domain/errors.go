package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email address is already in use")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrResetTokenInvalid  = errors.New("password reset link is invalid or has expired")
	ErrPartnerPending     = errors.New("Your account is pending approval. Please contact the administrator.")

	ErrValidation = errors.New("validation failed")

	ErrIssueNotFound        = errors.New("issue not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrActionNotAllowed     = errors.New("action not allowed in current status")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message cannot be empty")
	ErrBotTyping            = errors.New("assistant is still replying")
	ErrChatBusy             = errors.New("assistant is busy, please try again shortly")
	ErrChatFull             = errors.New("too many open chats, please try again later")
)

// ValidationError is a locally detected form rule violation. Message is
// shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
