package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes and response payloads.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("account is blocked")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrEmailExists        = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrProfileEmpty       = errors.New("no profile fields to update")
	ErrSelfBlock          = errors.New("cannot block your own account")

	ErrInvalidVerifyPurpose       = errors.New("unsupported verification purpose")
	ErrVerifyCodeInvalid          = errors.New("verification code is invalid")
	ErrVerifyCodeExpired          = errors.New("verification code has expired")
	ErrVerifyCodeTooFrequent      = errors.New("verification code requested too frequently")
	ErrVerifyCodeAttemptsExceeded = errors.New("too many verification attempts")
	ErrEmailServiceDisabled       = errors.New("email sending is disabled")
	ErrEmailServiceNotConfigured  = errors.New("email service is not configured")
	ErrEmailRecipientRejected     = errors.New("recipient address rejected by mail server")

	ErrProductNotFound     = errors.New("product not found")
	ErrProductInactive     = errors.New("product is not available")
	ErrProductPriceInvalid = errors.New("product price is invalid")

	ErrCartEmpty           = errors.New("cart is empty")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrQuantityInvalid     = errors.New("quantity must be at least 1")
	ErrWishlistDuplicate   = errors.New("product is already in the wishlist")
	ErrWishlistNotFound    = errors.New("wishlist item not found")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("unknown order status")
	ErrOrderCreateFailed  = errors.New("failed to place order")

	ErrUploadTooLarge    = errors.New("file exceeds the size limit")
	ErrUploadBadType     = errors.New("file type is not allowed")
	ErrUploadBadFilename = errors.New("file extension is not allowed")
)

// FieldError reports a missing or malformed order field. Callers can match
// it with errors.As and read the field name for the response payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// NewFieldError builds a FieldError for a required order field.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
