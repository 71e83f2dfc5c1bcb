// Package interpreter classifies free-form task commands into structured
// intents. It is heuristic by design: extraction failures degrade to empty
// fields or KindUnknown, never to errors.
package interpreter

import (
	"strconv"
	"strings"
	"time"

	"personal-secretary/internal/model"
	"personal-secretary/pkg/datemath"
	"personal-secretary/pkg/sanitize"
)

// maxInputLength caps regex evaluation cost on hostile inputs. The HTTP
// layer enforces a tighter bound; this one is a backstop.
const maxInputLength = 2000

// Interpreter turns raw command text into an Intent.
type Interpreter struct {
	resolver *datemath.Resolver
}

// New creates an Interpreter that resolves date phrases with the given
// resolver.
func New(resolver *datemath.Resolver) *Interpreter {
	if resolver == nil {
		panic("interpreter: resolver is required")
	}
	return &Interpreter{resolver: resolver}
}

// Interpret classifies text into exactly one Intent, resolving relative
// date phrases against now. It never fails: unrecognized input yields
// KindUnknown.
func (i *Interpreter) Interpret(text string, now time.Time) Intent {
	text = strings.TrimSpace(text)
	if r := []rune(text); len(r) > maxInputLength {
		text = string(r[:maxInputLength])
	}

	kind := classify(text)

	switch kind {
	case KindCreateTask:
		return Intent{Kind: kind, Create: i.extractCreate(text, now), Raw: text}
	case KindListTasks:
		return Intent{Kind: kind, List: extractListFilters(text), Raw: text}
	case KindCompleteTask, KindDeleteTask:
		return Intent{Kind: kind, Ref: extractTaskRef(text), Raw: text}
	default:
		return Intent{Kind: KindUnknown, Raw: text}
	}
}

// classify runs the ordered rule cascade; first match wins.
func classify(text string) Kind {
	if text == "" {
		return KindUnknown
	}
	for _, r := range intentRules {
		if r.re.MatchString(text) {
			return r.kind
		}
	}
	return KindUnknown
}

// extractCreate pulls title, schedule and priority out of a creation command.
func (i *Interpreter) extractCreate(text string, now time.Time) *CreateTask {
	importance, urgency := extractPriority(text)
	resolved := i.resolver.Resolve(text, now)

	title := reCreateTriggers.ReplaceAllString(text, " ")
	title = reLowPriority.ReplaceAllString(title, " ")
	title = reHighPriority.ReplaceAllString(title, " ")
	title = reTaskWord.ReplaceAllString(title, " ")
	title = datemath.StripPhrases(title)
	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, ".,!?")

	return &CreateTask{
		Title:      title,
		DueDate:    resolved.Date,
		DueTime:    resolved.Time,
		Importance: importance,
		Urgency:    urgency,
	}
}

// extractPriority maps urgency keywords to the 1-5 scale. High keywords
// raise both axes, low keywords drop both, absence means the midpoint.
func extractPriority(text string) (importance, urgency int) {
	switch {
	case reLowPriority.MatchString(text):
		return model.PriorityMin, model.PriorityMin
	case reHighPriority.MatchString(text):
		return model.PriorityMax, model.PriorityMax
	default:
		return model.PriorityDefault, model.PriorityDefault
	}
}

// extractListFilters detects date scope, priority thresholds and sort
// criteria in a list command.
func extractListFilters(text string) *ListTasks {
	filters := &ListTasks{DateFilter: DateFilterAll, SortBy: "due_date"}

	switch {
	case reFilterToday.MatchString(text):
		filters.DateFilter = DateFilterToday
	case reFilterTomorrow.MatchString(text):
		filters.DateFilter = DateFilterTomorrow
	case reFilterWeek.MatchString(text):
		filters.DateFilter = DateFilterWeek
	case reFilterMonth.MatchString(text):
		filters.DateFilter = DateFilterMonth
	}

	if reFilterUrgent.MatchString(text) {
		filters.MinUrgency = HighPriorityThreshold
		filters.SortBy = "urgency"
	}
	if reFilterImportant.MatchString(text) {
		filters.MinImportance = HighPriorityThreshold
		if filters.SortBy == "due_date" {
			filters.SortBy = "importance"
		}
	}

	return filters
}

// extractTaskRef finds the target of a complete/delete command: a numeric
// reference when present, otherwise a sanitized fuzzy title fragment.
func extractTaskRef(text string) *TaskRef {
	if m := reNumericRef.FindStringSubmatch(text); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return &TaskRef{ID: id}
		}
	}

	fragment := reRefTriggers.ReplaceAllString(text, " ")
	fragment = reTaskWord.ReplaceAllString(fragment, " ")
	fragment = sanitize.Term(fragment)
	fragment = strings.Trim(fragment, " .,!?")

	return &TaskRef{TitleFragment: fragment}
}
