package public

import "github.com/favorite-plug/api/internal/provider"

// Handler serves the storefront and account APIs.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
