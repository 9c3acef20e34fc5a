package admin

import "github.com/favorite-plug/api/internal/provider"

// Handler serves the admin APIs.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
