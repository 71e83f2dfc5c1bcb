// Package mirror decorates the task use case with Google Calendar mirroring:
// scheduled tasks created through any surface also become calendar events.
package mirror

import (
	"context"
	"time"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	"personal-secretary/pkg/gcalendar"
	"personal-secretary/pkg/log"
)

// defaultEventMinutes is the event length used when the task has no duration.
const defaultEventMinutes = 30

// EventCreator is the slice of the calendar client the mirror needs.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type Config struct {
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	task.UseCase

	l      log.Logger
	events EventCreator
	config Config
}

// NewUseCase wraps a task use case so that calendar-type tasks with a due
// date and time are mirrored as events. Mirror failures are logged and never
// fail the create.
func NewUseCase(inner task.UseCase, events EventCreator, cfg Config, l log.Logger) task.UseCase {
	return &implUseCase{
		UseCase: inner,
		l:       l,
		events:  events,
		config:  cfg,
	}
}

func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	output, err := uc.UseCase.Create(ctx, input)
	if err != nil {
		return output, err
	}

	if t := output.Task; t.TaskType == model.TaskTypeCalendar && t.DueDate != "" && t.DueTime != "" {
		uc.mirror(ctx, t)
	}
	return output, nil
}

func (uc *implUseCase) mirror(ctx context.Context, t model.Task) {
	loc, err := time.LoadLocation(uc.config.Timezone)
	if err != nil {
		loc = time.Local
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", t.DueDate+" "+t.DueTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "mirror: unparseable schedule %q %q for task %d", t.DueDate, t.DueTime, t.ID)
		return
	}

	minutes := t.DurationMinutes
	if minutes <= 0 {
		minutes = defaultEventMinutes
	}

	event, err := uc.events.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.config.CalendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute),
		Timezone:    uc.config.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "mirror: calendar event for task %d: %v", t.ID, err)
		return
	}
	uc.l.Infof(ctx, "mirror: task %d mirrored as event %s", t.ID, event.ID)
}
