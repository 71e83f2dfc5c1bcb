package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personal-secretary/internal/command"
	"personal-secretary/internal/interpreter"
	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
)

// maxCommandLength bounds the accepted command text in characters.
const maxCommandLength = 1000

const unknownCommandMessage = `I did not understand that command. Try "add task", "show tasks", or "complete task".`

// Execute interprets one natural language command and runs the matching task
// operation. Store misses on complete/delete come back as a conversational
// failure message, not an error.
func (uc *implUseCase) Execute(ctx context.Context, input command.ExecuteInput) (command.ExecuteOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return command.ExecuteOutput{}, command.ErrEmptyCommand
	}
	if len([]rune(text)) > maxCommandLength {
		return command.ExecuteOutput{}, command.ErrCommandTooLong
	}

	intent := uc.itp.Interpret(text, uc.clock())
	uc.l.Debugf(ctx, "command.Execute: intent=%s text=%q", intent.Kind, text)

	switch intent.Kind {
	case interpreter.KindCreateTask:
		return uc.runCreate(ctx, intent.Create)
	case interpreter.KindListTasks:
		return uc.runList(ctx, intent.List)
	case interpreter.KindCompleteTask:
		return uc.runComplete(ctx, intent.Ref)
	case interpreter.KindDeleteTask:
		return uc.runDelete(ctx, intent.Ref)
	default:
		return command.ExecuteOutput{
			Action:  string(interpreter.KindUnknown),
			Message: unknownCommandMessage,
		}, nil
	}
}

func (uc *implUseCase) runCreate(ctx context.Context, in *interpreter.CreateTask) (command.ExecuteOutput, error) {
	if in.Title == "" {
		return command.ExecuteOutput{
			Action:  "error",
			Message: "Could not extract task title",
		}, nil
	}

	output, err := uc.taskUC.Create(ctx, task.CreateTaskInput{
		Title:      in.Title,
		Importance: in.Importance,
		Urgency:    in.Urgency,
		DueDate:    in.DueDate,
		DueTime:    in.DueTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "command.runCreate: %v", err)
		return command.ExecuteOutput{}, err
	}

	t := output.Task
	message := fmt.Sprintf("Task '%s' added", t.Title)
	if t.DueDate != "" {
		message += " for " + t.DueDate
		if t.DueTime != "" {
			message += " at " + t.DueTime
		}
	}

	return command.ExecuteOutput{
		Success: true,
		Action:  "task_created",
		Message: message,
		Task:    &t,
	}, nil
}

func (uc *implUseCase) runList(ctx context.Context, in *interpreter.ListTasks) (command.ExecuteOutput, error) {
	// Conversational listing only surfaces open work.
	output, err := uc.taskUC.List(ctx, task.ListTasksInput{
		Status:        model.TaskStatusPending,
		DateFilter:    string(in.DateFilter),
		MinImportance: in.MinImportance,
		MinUrgency:    in.MinUrgency,
		SortBy:        in.SortBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "command.runList: %v", err)
		return command.ExecuteOutput{}, err
	}

	message := fmt.Sprintf("Found %d task", len(output.Tasks))
	if len(output.Tasks) != 1 {
		message += "s"
	}
	if in.DateFilter != interpreter.DateFilterAll {
		message += " for " + string(in.DateFilter)
	}

	return command.ExecuteOutput{
		Success: true,
		Action:  "tasks_listed",
		Message: message,
		Tasks:   output.Tasks,
	}, nil
}

func (uc *implUseCase) runComplete(ctx context.Context, ref *interpreter.TaskRef) (command.ExecuteOutput, error) {
	output, err := uc.taskUC.Complete(ctx, task.ResolveInput{
		ID:            ref.ID,
		TitleFragment: ref.TitleFragment,
	})
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) || errors.Is(err, task.ErrMissingTarget) {
			return command.ExecuteOutput{
				Action:  "error",
				Message: "Could not find task to complete",
			}, nil
		}
		uc.l.Errorf(ctx, "command.runComplete: %v", err)
		return command.ExecuteOutput{}, err
	}

	t := output.Task
	return command.ExecuteOutput{
		Success: true,
		Action:  "task_completed",
		Message: fmt.Sprintf("Task '%s' marked as complete", t.Title),
		Task:    &t,
	}, nil
}

func (uc *implUseCase) runDelete(ctx context.Context, ref *interpreter.TaskRef) (command.ExecuteOutput, error) {
	output, err := uc.taskUC.Delete(ctx, task.ResolveInput{
		ID:            ref.ID,
		TitleFragment: ref.TitleFragment,
	})
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) || errors.Is(err, task.ErrMissingTarget) {
			return command.ExecuteOutput{
				Action:  "error",
				Message: "Could not find task to delete",
			}, nil
		}
		uc.l.Errorf(ctx, "command.runDelete: %v", err)
		return command.ExecuteOutput{}, err
	}

	t := output.Task
	return command.ExecuteOutput{
		Success: true,
		Action:  "task_deleted",
		Message: fmt.Sprintf("Task '%s' deleted", t.Title),
		Task:    &t,
	}, nil
}
