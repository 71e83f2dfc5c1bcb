package usecase_test

import (
	"context"
	"errors"
	"testing"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	"personal-secretary/internal/task/usecase"
)

func TestPriorityMatrix(t *testing.T) {
	ctx := context.Background()

	repo := newMockRepo(
		model.Task{ID: 1, Title: "fire", Urgency: 5, Importance: 5, Status: model.TaskStatusPending},
		model.Task{ID: 2, Title: "strategy", Urgency: 1, Importance: 5, Status: model.TaskStatusPending},
		model.Task{ID: 3, Title: "interruption", Urgency: 5, Importance: 1, Status: model.TaskStatusPending},
		model.Task{ID: 4, Title: "timewaster", Urgency: 1, Importance: 1, Status: model.TaskStatusPending},
		model.Task{ID: 5, Title: "edge", Urgency: 3, Importance: 3, Status: model.TaskStatusPending},
	)
	uc := usecase.New(repo, &mockLogger{}, fixedClock)

	out, err := uc.PriorityMatrix(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The midpoint (3) counts as both urgent and important.
	if len(out.UrgentImportant) != 2 {
		t.Errorf("urgent+important = %d, want 2", len(out.UrgentImportant))
	}
	if len(out.NotUrgentImportant) != 1 || out.NotUrgentImportant[0].ID != 2 {
		t.Errorf("not-urgent+important wrong: %+v", out.NotUrgentImportant)
	}
	if len(out.UrgentNotImportant) != 1 || out.UrgentNotImportant[0].ID != 3 {
		t.Errorf("urgent+not-important wrong: %+v", out.UrgentNotImportant)
	}
	if len(out.NotUrgentNotImportant) != 1 || out.NotUrgentNotImportant[0].ID != 4 {
		t.Errorf("not-urgent+not-important wrong: %+v", out.NotUrgentNotImportant)
	}
}

func TestCalendarView(t *testing.T) {
	ctx := context.Background()

	repo := newMockRepo(
		model.Task{ID: 1, Title: "a", DueDate: "2026-01-28", Status: model.TaskStatusPending},
		model.Task{ID: 2, Title: "b", DueDate: "2026-01-28", Status: model.TaskStatusPending},
		model.Task{ID: 3, Title: "c", DueDate: "2026-01-30", Status: model.TaskStatusPending},
		model.Task{ID: 4, Title: "unscheduled", Status: model.TaskStatusPending},
	)
	uc := usecase.New(repo, &mockLogger{}, fixedClock)

	t.Run("Groups by due date", func(t *testing.T) {
		out, err := uc.CalendarView(ctx, task.CalendarViewInput{
			StartDate: "2026-01-26",
			EndDate:   "2026-02-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != 2 {
			t.Errorf("days = %d, want 2", len(out.Days))
		}
		if len(out.Days["2026-01-28"]) != 2 {
			t.Errorf("2026-01-28 has %d tasks, want 2", len(out.Days["2026-01-28"]))
		}
		if len(out.Days["2026-01-30"]) != 1 {
			t.Errorf("2026-01-30 has %d tasks, want 1", len(out.Days["2026-01-30"]))
		}
	})

	t.Run("Invalid range", func(t *testing.T) {
		_, err := uc.CalendarView(ctx, task.CalendarViewInput{
			StartDate: "2026-02-01",
			EndDate:   "2026-01-01",
		})
		if !errors.Is(err, task.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange for reversed range, got %v", err)
		}

		_, err = uc.CalendarView(ctx, task.CalendarViewInput{
			StartDate: "not-a-date",
			EndDate:   "2026-01-01",
		})
		if !errors.Is(err, task.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange for malformed date, got %v", err)
		}
	})
}
