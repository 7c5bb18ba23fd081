package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/balance"
	"mentalbank/pkg/log"
)

// Handler is the public interface for the balance HTTP delivery layer.
type Handler interface {
	GetBalance(c *gin.Context)
	UpdateTarget(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc balance.UseCase
}

// New creates a new HTTP handler for the balance domain.
func New(l log.Logger, uc balance.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
