package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/favorite-plug/api/internal/http/handlers/shared"
	"github.com/favorite-plug/api/internal/http/response"
	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsers returns accounts matching the filters, newest first.
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	keyword := strings.TrimSpace(c.Query("keyword"))
	role := strings.TrimSpace(c.Query("role"))

	var blocked *bool
	if raw := strings.TrimSpace(c.Query("blocked")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid blocked filter", nil)
			return
		}
		blocked = &value
	}

	users, total, err := h.UserAdminService.List(keyword, role, blocked, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list users", err)
		return
	}

	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetUser returns one account with the shipping profile.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.UserAdminService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load user", err)
		return
	}

	response.Success(c, user)
}

// SetUserBlockedRequest blocks or unblocks an account.
type SetUserBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// SetUserBlocked blocks or unblocks an account.
func (h *Handler) SetUserBlocked(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SetUserBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserAdminService.SetBlocked(adminID, id, *req.Blocked)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfBlock):
			respondError(c, response.CodeBadRequest, "cannot block your own account", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "user not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update user", err)
		}
		return
	}

	response.Success(c, user)
}
