package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"personal-secretary/internal/command"
	"personal-secretary/internal/interpreter"
	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	"personal-secretary/pkg/datemath"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockTaskUC struct {
	createInput   task.CreateTaskInput
	createErr     error
	listInput     task.ListTasksInput
	listTasks     []model.Task
	listErr       error
	completeInput task.ResolveInput
	completeErr   error
	deleteInput   task.ResolveInput
	deleteErr     error
}

func (m *mockTaskUC) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.createInput = input
	if m.createErr != nil {
		return task.CreateTaskOutput{}, m.createErr
	}
	return task.CreateTaskOutput{Task: model.Task{
		ID:         1,
		Title:      input.Title,
		Importance: input.Importance,
		Urgency:    input.Urgency,
		DueDate:    input.DueDate,
		DueTime:    input.DueTime,
		Status:     model.TaskStatusPending,
	}}, nil
}
func (m *mockTaskUC) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.listInput = input
	return task.ListTasksOutput{Tasks: m.listTasks, Total: len(m.listTasks)}, m.listErr
}
func (m *mockTaskUC) Detail(ctx context.Context, id int64) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{}, nil
}
func (m *mockTaskUC) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{}, nil
}
func (m *mockTaskUC) Complete(ctx context.Context, input task.ResolveInput) (task.CompleteTaskOutput, error) {
	m.completeInput = input
	if m.completeErr != nil {
		return task.CompleteTaskOutput{}, m.completeErr
	}
	return task.CompleteTaskOutput{Task: model.Task{ID: input.ID, Title: "call dentist", Status: model.TaskStatusCompleted}}, nil
}
func (m *mockTaskUC) Delete(ctx context.Context, input task.ResolveInput) (task.DeleteTaskOutput, error) {
	m.deleteInput = input
	if m.deleteErr != nil {
		return task.DeleteTaskOutput{}, m.deleteErr
	}
	return task.DeleteTaskOutput{Task: model.Task{ID: 2, Title: "weekly report"}}, nil
}
func (m *mockTaskUC) PriorityMatrix(ctx context.Context) (task.PriorityMatrixOutput, error) {
	return task.PriorityMatrixOutput{}, nil
}
func (m *mockTaskUC) CalendarView(ctx context.Context, input task.CalendarViewInput) (task.CalendarViewOutput, error) {
	return task.CalendarViewOutput{}, nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

// Wednesday, fixed so weekday math is repeatable.
var refNow = time.Date(2026, time.January, 28, 9, 0, 0, 0, time.UTC)

func newExecUC(t *testing.T) (command.UseCase, *mockTaskUC) {
	t.Helper()

	resolver, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	muc := &mockTaskUC{}
	uc := New(&mockLogger{}, interpreter.New(resolver), muc, func() time.Time { return refNow })
	return uc, muc
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestExecuteCreate(t *testing.T) {
	uc, muc := newExecUC(t)

	out, err := uc.Execute(context.Background(), command.ExecuteInput{
		Text: "Add task call dentist tomorrow at 2pm",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !out.Success || out.Action != "task_created" {
		t.Errorf("unexpected result: %+v", out)
	}
	if muc.createInput.Title != "call dentist" {
		t.Errorf("expected title %q, got %q", "call dentist", muc.createInput.Title)
	}
	want := "Task 'call dentist' added for 2026-01-29 at 14:00"
	if out.Message != want {
		t.Errorf("expected message %q, got %q", want, out.Message)
	}
	if out.Task == nil || out.Task.ID != 1 {
		t.Errorf("expected created task in output, got %+v", out.Task)
	}
}

func TestExecuteCreateNoDate(t *testing.T) {
	uc, _ := newExecUC(t)

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "add buy milk"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Message != "Task 'buy milk' added" {
		t.Errorf("expected bare added message, got %q", out.Message)
	}
}

func TestExecuteCreateEmptyTitle(t *testing.T) {
	uc, muc := newExecUC(t)

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "add task tomorrow"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out.Success || out.Action != "error" {
		t.Errorf("expected conversational failure, got %+v", out)
	}
	if out.Message != "Could not extract task title" {
		t.Errorf("unexpected message %q", out.Message)
	}
	if muc.createInput.Title != "" {
		t.Errorf("store must not be called, but Create got %+v", muc.createInput)
	}
}

func TestExecuteList(t *testing.T) {
	uc, muc := newExecUC(t)
	muc.listTasks = []model.Task{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	}

	out, err := uc.Execute(context.Background(), command.ExecuteInput{
		Text: "What are my tasks for today?",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out.Action != "tasks_listed" {
		t.Errorf("expected tasks_listed, got %q", out.Action)
	}
	if muc.listInput.DateFilter != "today" {
		t.Errorf("expected today filter, got %q", muc.listInput.DateFilter)
	}
	if muc.listInput.Status != model.TaskStatusPending {
		t.Errorf("expected pending scope, got %q", muc.listInput.Status)
	}
	if out.Message != "Found 2 tasks for today" {
		t.Errorf("unexpected message %q", out.Message)
	}
	if len(out.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(out.Tasks))
	}
}

func TestExecuteListSingular(t *testing.T) {
	uc, muc := newExecUC(t)
	muc.listTasks = []model.Task{{ID: 1, Title: "only"}}

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "show my tasks"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Message != "Found 1 task" {
		t.Errorf("expected singular message without filter suffix, got %q", out.Message)
	}
}

func TestExecuteCompleteByNumber(t *testing.T) {
	uc, muc := newExecUC(t)

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "Complete task number 1"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out.Action != "task_completed" {
		t.Errorf("expected task_completed, got %q", out.Action)
	}
	if muc.completeInput.ID != 1 {
		t.Errorf("expected resolve by ID 1, got %+v", muc.completeInput)
	}
	if !strings.HasPrefix(out.Message, "Task '") || !strings.HasSuffix(out.Message, "' marked as complete") {
		t.Errorf("unexpected message %q", out.Message)
	}
}

func TestExecuteCompleteNotFound(t *testing.T) {
	uc, muc := newExecUC(t)
	muc.completeErr = task.ErrTaskNotFound

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "finish the report task"})
	if err != nil {
		t.Fatalf("store miss must not surface as error, got %v", err)
	}
	if out.Success || out.Message != "Could not find task to complete" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestExecuteDeleteByFragment(t *testing.T) {
	uc, muc := newExecUC(t)

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "Delete that report task"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out.Action != "task_deleted" {
		t.Errorf("expected task_deleted, got %q", out.Action)
	}
	if muc.deleteInput.TitleFragment != "report" {
		t.Errorf("expected fragment %q, got %+v", "report", muc.deleteInput)
	}
	if out.Message != "Task 'weekly report' deleted" {
		t.Errorf("unexpected message %q", out.Message)
	}
}

func TestExecuteDeleteNotFound(t *testing.T) {
	uc, muc := newExecUC(t)
	muc.deleteErr = task.ErrTaskNotFound

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "delete the payroll task"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Success || out.Message != "Could not find task to delete" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestExecuteUnknown(t *testing.T) {
	uc, _ := newExecUC(t)

	out, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "sing me a song"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Success || out.Action != "unknown" {
		t.Errorf("unexpected result: %+v", out)
	}
	if !strings.Contains(out.Message, "did not understand") {
		t.Errorf("unexpected message %q", out.Message)
	}
}

func TestExecuteInputBounds(t *testing.T) {
	uc, _ := newExecUC(t)

	if _, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "   "}); !errors.Is(err, command.ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}

	long := strings.Repeat("a", 1001)
	if _, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "add task " + long}); !errors.Is(err, command.ErrCommandTooLong) {
		t.Errorf("expected ErrCommandTooLong, got %v", err)
	}
}

func TestExecutePropagatesStoreErrors(t *testing.T) {
	uc, muc := newExecUC(t)
	errBoom := errors.New("disk on fire")
	muc.listErr = errBoom

	if _, err := uc.Execute(context.Background(), command.ExecuteInput{Text: "show my tasks"}); !errors.Is(err, errBoom) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}
