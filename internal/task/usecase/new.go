package usecase

import (
	"time"

	"personal-secretary/internal/task/repository"
	"personal-secretary/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	clock func() time.Time
}

// New creates a new task UseCase implementation. clock may be nil, in
// which case time.Now is used; tests inject a fixed clock to make the
// relative date filters deterministic.
func New(repo repository.Repository, l log.Logger, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		repo:  repo,
		l:     l,
		clock: clock,
	}
}
