package command

import "context"

// UseCase interprets natural language commands and dispatches them to the
// task domain.
type UseCase interface {
	Execute(ctx context.Context, input ExecuteInput) (ExecuteOutput, error)
}
