package usecase_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fixedClock is Wednesday, January 28, 2026.
var fixedClock = func() time.Time {
	return time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
}

// mockRepo is an in-memory Repository recording the options it receives.
type mockRepo struct {
	tasks  []model.Task
	nextID int64
	fail   bool

	lastListOpt repository.ListTasksOptions
}

func newMockRepo(seed ...model.Task) *mockRepo {
	r := &mockRepo{nextID: 1}
	for _, t := range seed {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
		r.tasks = append(r.tasks, t)
	}
	return r
}

var errMock = errors.New("mock repository failure")

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errMock
	}
	t := model.Task{
		ID:              m.nextID,
		Title:           opt.Title,
		Description:     opt.Description,
		Importance:      opt.Importance,
		Urgency:         opt.Urgency,
		DueDate:         opt.DueDate,
		DueTime:         opt.DueTime,
		DurationMinutes: opt.DurationMinutes,
		Status:          model.TaskStatusPending,
		TaskType:        opt.TaskType,
		CreatedAt:       fixedClock(),
		UpdatedAt:       fixedClock(),
	}
	m.nextID++
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errMock
	}
	for _, t := range m.tasks {
		if opt.ID != 0 && t.ID == opt.ID {
			return t, nil
		}
		if opt.ID == 0 && opt.TitleFragment != "" &&
			t.Status != model.TaskStatusCompleted &&
			strings.Contains(strings.ToLower(t.Title), strings.ToLower(opt.TitleFragment)) {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.fail {
		return nil, 0, errMock
	}
	m.lastListOpt = opt

	var out []model.Task
	for _, t := range m.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Status == "" && t.Status == model.TaskStatusCompleted {
			continue
		}
		if opt.DueFrom != "" && (t.DueDate == "" || t.DueDate < opt.DueFrom) {
			continue
		}
		if opt.DueTo != "" && (t.DueDate == "" || t.DueDate > opt.DueTo) {
			continue
		}
		if opt.MinImportance > 0 && t.Importance < opt.MinImportance {
			continue
		}
		if opt.MinUrgency > 0 && t.Urgency < opt.MinUrgency {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errMock
	}
	for i, t := range m.tasks {
		if t.ID == opt.ID {
			t.Title = opt.Title
			t.Description = opt.Description
			t.Importance = opt.Importance
			t.Urgency = opt.Urgency
			t.DueDate = opt.DueDate
			t.DueTime = opt.DueTime
			t.DurationMinutes = opt.DurationMinutes
			t.Status = opt.Status
			t.TaskType = opt.TaskType
			t.UpdatedAt = fixedClock()
			m.tasks[i] = t
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) CompleteTask(ctx context.Context, id int64) (model.Task, error) {
	if m.fail {
		return model.Task{}, errMock
	}
	for i, t := range m.tasks {
		if t.ID == id {
			now := fixedClock()
			t.Status = model.TaskStatusCompleted
			t.CompletedAt = &now
			m.tasks[i] = t
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id int64) error {
	if m.fail {
		return errMock
	}
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}
