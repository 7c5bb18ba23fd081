package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/goal"
	"mentalbank/pkg/log"
)

// Handler is the public interface for the goal HTTP delivery layer.
type Handler interface {
	CreateGoal(c *gin.Context)
	ListGoals(c *gin.Context)
	DetailGoal(c *gin.Context)
	UpdateGoal(c *gin.Context)
	DeleteGoal(c *gin.Context)

	CreateMilestone(c *gin.Context)
	ListMilestones(c *gin.Context)
	UpdateMilestone(c *gin.Context)
	CompleteMilestone(c *gin.Context)
	DeleteMilestone(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc goal.UseCase
}

// New creates a new HTTP handler for the goal domain.
func New(l log.Logger, uc goal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
