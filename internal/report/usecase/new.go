package usecase

import (
	"time"

	goalRepo "mentalbank/internal/goal/repository"
	taskRepo "mentalbank/internal/task/repository"
	"mentalbank/pkg/log"
)

// implUseCase is the private implementation of report.UseCase. It fetches
// rows from the task and goal stores and hands them to the engine with an
// explicit reference instant.
type implUseCase struct {
	taskRepo taskRepo.Repository
	goalRepo goalRepo.Repository
	l        log.Logger
	now      func() time.Time
}

// New creates a new report UseCase implementation.
func New(tr taskRepo.Repository, gr goalRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		taskRepo: tr,
		goalRepo: gr,
		l:        l,
		now:      time.Now,
	}
}
