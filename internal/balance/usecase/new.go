package usecase

import (
	"time"

	"mentalbank/internal/balance/repository"
	taskRepo "mentalbank/internal/task/repository"
	"mentalbank/pkg/log"
)

// implUseCase is the private implementation of balance.UseCase.
type implUseCase struct {
	repo     repository.Repository
	taskRepo taskRepo.Repository
	l        log.Logger
	now      func() time.Time
}

// New creates a new balance UseCase implementation.
func New(repo repository.Repository, tr taskRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		taskRepo: tr,
		l:        l,
		now:      time.Now,
	}
}
