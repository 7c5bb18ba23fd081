package usecase

import (
	"time"

	balanceRepo "mentalbank/internal/balance/repository"
	taskRepo "mentalbank/internal/task/repository"
	"mentalbank/internal/transfer/repository"
	"mentalbank/pkg/log"
)

// implUseCase is the private implementation of transfer.UseCase.
type implUseCase struct {
	repo        repository.Repository
	taskRepo    taskRepo.Repository
	balanceRepo balanceRepo.Repository
	l           log.Logger
	now         func() time.Time
}

// New creates a new transfer UseCase implementation.
func New(repo repository.Repository, tr taskRepo.Repository, br balanceRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		taskRepo:    tr,
		balanceRepo: br,
		l:           l,
		now:         time.Now,
	}
}
