package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/task"
	"mentalbank/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	CreateTask(c *gin.Context)
	ListTasks(c *gin.Context)
	DetailTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	CompleteTask(c *gin.Context)
	DeleteTask(c *gin.Context)

	CreateCategory(c *gin.Context)
	ListCategories(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
