// Package admin holds the panel API handlers. Every route here sits behind
// JWT auth except login.
package admin

import "github.com/linque-cms/internal/provider"

type Handler struct {
	*provider.Container
}

func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
