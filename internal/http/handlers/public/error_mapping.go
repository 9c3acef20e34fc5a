package public

import (
	"errors"

	"github.com/favorite-plug/api/internal/http/response"
	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service sentinel onto a response code/message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	var fieldErr *service.FieldError
	if errors.As(err, &fieldErr) {
		respondError(c, response.CodeBadRequest, fieldErr.Message, nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "invalid email address"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, msg: "email is already registered"},
	{target: service.ErrInvalidVerifyPurpose, code: response.CodeBadRequest, msg: "unsupported verification purpose"},
	{target: service.ErrVerifyCodeInvalid, code: response.CodeBadRequest, msg: "verification code is invalid"},
	{target: service.ErrVerifyCodeExpired, code: response.CodeBadRequest, msg: "verification code has expired"},
	{target: service.ErrVerifyCodeAttemptsExceeded, code: response.CodeBadRequest, msg: "too many verification attempts"},
	{target: service.ErrVerifyCodeTooFrequent, code: response.CodeTooManyRequests, msg: "verification code requested too frequently"},
	{target: service.ErrEmailRecipientRejected, code: response.CodeBadRequest, msg: "recipient address rejected"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "invalid email or password"},
	{target: service.ErrUserBlocked, code: response.CodeForbidden, msg: "account is blocked"},
	{target: service.ErrEmailNotVerified, code: response.CodeForbidden, msg: "email is not verified"},
	{target: service.ErrInvalidPassword, code: response.CodeBadRequest, msg: "current password is incorrect"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "account not found"},
	{target: service.ErrProfileEmpty, code: response.CodeBadRequest, msg: "no profile fields to update"},
	{target: service.ErrEmailServiceDisabled, code: response.CodeInternal, msg: "email service is not configured"},
	{target: service.ErrEmailServiceNotConfigured, code: response.CodeInternal, msg: "email service is not configured"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity must be at least 1"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, msg: "product is not available"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
}

var wishlistErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrWishlistDuplicate, code: response.CodeConflict, msg: "product is already in the wishlist"},
	{target: service.ErrWishlistNotFound, code: response.CodeNotFound, msg: "wishlist item not found"},
}

var orderPlaceErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "a cart product no longer exists"},
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "request failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}

func respondWishlistError(c *gin.Context, err error) {
	respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "wishlist operation failed")
}

func respondOrderPlaceError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderPlaceErrorRules, response.CodeInternal, "failed to place order")
}
