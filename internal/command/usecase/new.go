package usecase

import (
	"time"

	"personal-secretary/internal/command"
	"personal-secretary/internal/interpreter"
	"personal-secretary/internal/task"
	"personal-secretary/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	itp    *interpreter.Interpreter
	taskUC task.UseCase
	clock  func() time.Time
}

// New creates a new command use case. clock supplies the reference time for
// date resolution; nil means time.Now.
func New(l log.Logger, itp *interpreter.Interpreter, taskUC task.UseCase, clock func() time.Time) command.UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:      l,
		itp:    itp,
		taskUC: taskUC,
		clock:  clock,
	}
}
