package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/transfer"
	"mentalbank/pkg/log"
)

// Handler is the public interface for the transfer HTTP delivery layer.
type Handler interface {
	Export(c *gin.Context)
	Import(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc transfer.UseCase
}

// New creates a new HTTP handler for the transfer domain.
func New(l log.Logger, uc transfer.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
