package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"mentalbank/internal/report"
	"mentalbank/pkg/log"
)

const (
	cacheSize = 1024
	cacheTTL  = 30 * time.Second
)

// Handler is the public interface for the report HTTP delivery layer.
type Handler interface {
	UpcomingGoals(c *gin.Context)
	GoalSummary(c *gin.Context)
	Categories(c *gin.Context)
	Insights(c *gin.Context)
}

// handler caches aggregate responses briefly: mutations elsewhere are
// tolerated as staleness, never served beyond the TTL.
type handler struct {
	l     log.Logger
	uc    report.UseCase
	cache *expirable.LRU[string, any]
}

// New creates a new HTTP handler for the report domain.
func New(l log.Logger, uc report.UseCase) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		cache: expirable.NewLRU[string, any](cacheSize, nil, cacheTTL),
	}
}
