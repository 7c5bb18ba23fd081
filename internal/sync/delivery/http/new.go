package http

import (
	"github.com/gin-gonic/gin"

	syncPkg "mentalbank/internal/sync"
	"mentalbank/pkg/log"
)

// Handler is the public interface for the sync HTTP delivery layer.
type Handler interface {
	Resync(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc syncPkg.UseCase
}

// New creates a new HTTP handler for the sync domain.
func New(l log.Logger, uc syncPkg.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
