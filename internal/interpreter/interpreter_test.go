package interpreter_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"personal-secretary/internal/interpreter"
	"personal-secretary/pkg/datemath"
)

// Wednesday, January 28, 2026.
var refNow = time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)

func newInterpreter(t *testing.T) *interpreter.Interpreter {
	t.Helper()
	resolver, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	return interpreter.New(resolver)
}

func TestInterpretCreateTask(t *testing.T) {
	i := newInterpreter(t)

	intent := i.Interpret("Add task call dentist tomorrow at 2pm", refNow)

	if intent.Kind != interpreter.KindCreateTask {
		t.Fatalf("expected create_task, got %s", intent.Kind)
	}
	c := intent.Create
	if c.Title != "call dentist" {
		t.Errorf("title = %q, want %q", c.Title, "call dentist")
	}
	if c.DueDate != "2026-01-29" {
		t.Errorf("due date = %q, want 2026-01-29", c.DueDate)
	}
	if c.DueTime != "14:00" {
		t.Errorf("due time = %q, want 14:00", c.DueTime)
	}
	if c.Importance != 3 || c.Urgency != 3 {
		t.Errorf("priority = %d/%d, want 3/3", c.Importance, c.Urgency)
	}
}

func TestInterpretCreateUrgentTask(t *testing.T) {
	i := newInterpreter(t)

	intent := i.Interpret("Add urgent task fix bug by Friday", refNow)

	if intent.Kind != interpreter.KindCreateTask {
		t.Fatalf("expected create_task, got %s", intent.Kind)
	}
	c := intent.Create
	if c.Title != "fix bug" {
		t.Errorf("title = %q, want %q", c.Title, "fix bug")
	}
	if c.DueDate != "2026-01-30" {
		t.Errorf("due date = %q, want 2026-01-30", c.DueDate)
	}
	if c.DueTime != "" {
		t.Errorf("due time = %q, want empty", c.DueTime)
	}
	if c.Importance != 5 || c.Urgency != 5 {
		t.Errorf("priority = %d/%d, want 5/5", c.Importance, c.Urgency)
	}
}

func TestInterpretCreateTriggers(t *testing.T) {
	i := newInterpreter(t)

	phrasings := []string{
		"add task buy groceries",
		"create buy groceries",
		"schedule buy groceries",
		"remind me to buy groceries",
		"i need to buy groceries",
	}

	for _, text := range phrasings {
		intent := i.Interpret(text, refNow)
		if intent.Kind != interpreter.KindCreateTask {
			t.Errorf("%q: expected create_task, got %s", text, intent.Kind)
			continue
		}
		if intent.Create.Title == "" {
			t.Errorf("%q: title should not be empty", text)
		}
		if strings.Contains(strings.ToLower(intent.Create.Title), "add") ||
			strings.Contains(strings.ToLower(intent.Create.Title), "remind") {
			t.Errorf("%q: title %q still contains trigger phrase", text, intent.Create.Title)
		}
	}
}

func TestInterpretPriorityKeywords(t *testing.T) {
	i := newInterpreter(t)

	tests := []struct {
		name           string
		text           string
		wantImportance int
		wantUrgency    int
	}{
		{name: "Urgent", text: "add urgent task pay bills", wantImportance: 5, wantUrgency: 5},
		{name: "Asap", text: "add task send invoice asap", wantImportance: 5, wantUrgency: 5},
		{name: "Critical", text: "create critical deploy fix", wantImportance: 5, wantUrgency: 5},
		{name: "Low priority", text: "add low priority task sort photos", wantImportance: 1, wantUrgency: 1},
		{name: "Someday", text: "remind me to learn piano someday", wantImportance: 1, wantUrgency: 1},
		{name: "No keyword defaults to midpoint", text: "add task water plants", wantImportance: 3, wantUrgency: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := i.Interpret(tt.text, refNow)
			if intent.Kind != interpreter.KindCreateTask {
				t.Fatalf("expected create_task, got %s", intent.Kind)
			}
			if intent.Create.Importance != tt.wantImportance {
				t.Errorf("importance = %d, want %d", intent.Create.Importance, tt.wantImportance)
			}
			if intent.Create.Urgency != tt.wantUrgency {
				t.Errorf("urgency = %d, want %d", intent.Create.Urgency, tt.wantUrgency)
			}
		})
	}
}

func TestInterpretPriorityBounds(t *testing.T) {
	i := newInterpreter(t)

	// Whatever the phrasing, importance and urgency stay in [1,5].
	texts := []string{
		"add urgent critical asap task everything at once",
		"add low priority someday whenever task nothing",
		"add task plain",
	}
	for _, text := range texts {
		intent := i.Interpret(text, refNow)
		c := intent.Create
		if c.Importance < 1 || c.Importance > 5 || c.Urgency < 1 || c.Urgency > 5 {
			t.Errorf("%q: priority out of bounds: %d/%d", text, c.Importance, c.Urgency)
		}
	}
}

func TestInterpretListTasks(t *testing.T) {
	i := newInterpreter(t)

	tests := []struct {
		name       string
		text       string
		wantFilter interpreter.DateFilter
		wantMinUrg int
		wantMinImp int
	}{
		{
			name:       "Urgent tasks",
			text:       "What are my urgent tasks",
			wantFilter: interpreter.DateFilterAll,
			wantMinUrg: interpreter.HighPriorityThreshold,
		},
		{
			name:       "Today",
			text:       "show my tasks for today",
			wantFilter: interpreter.DateFilterToday,
		},
		{
			name:       "Tomorrow",
			text:       "list tasks tomorrow",
			wantFilter: interpreter.DateFilterTomorrow,
		},
		{
			name:       "This week",
			text:       "what are my tasks this week",
			wantFilter: interpreter.DateFilterWeek,
		},
		{
			name:       "Important filter",
			text:       "show important tasks",
			wantFilter: interpreter.DateFilterAll,
			wantMinImp: interpreter.HighPriorityThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := i.Interpret(tt.text, refNow)
			if intent.Kind != interpreter.KindListTasks {
				t.Fatalf("expected list_tasks, got %s", intent.Kind)
			}
			l := intent.List
			if l.DateFilter != tt.wantFilter {
				t.Errorf("date filter = %s, want %s", l.DateFilter, tt.wantFilter)
			}
			if l.MinUrgency != tt.wantMinUrg {
				t.Errorf("min urgency = %d, want %d", l.MinUrgency, tt.wantMinUrg)
			}
			if l.MinImportance != tt.wantMinImp {
				t.Errorf("min importance = %d, want %d", l.MinImportance, tt.wantMinImp)
			}
		})
	}
}

func TestInterpretCompleteTask(t *testing.T) {
	i := newInterpreter(t)

	t.Run("Numeric reference", func(t *testing.T) {
		intent := i.Interpret("Complete task number 1", refNow)
		if intent.Kind != interpreter.KindCompleteTask {
			t.Fatalf("expected complete_task, got %s", intent.Kind)
		}
		if intent.Ref.ID != 1 {
			t.Errorf("ref id = %d, want 1", intent.Ref.ID)
		}
	})

	t.Run("Hash reference", func(t *testing.T) {
		intent := i.Interpret("mark done #12", refNow)
		if intent.Kind != interpreter.KindCompleteTask {
			t.Fatalf("expected complete_task, got %s", intent.Kind)
		}
		if intent.Ref.ID != 12 {
			t.Errorf("ref id = %d, want 12", intent.Ref.ID)
		}
	})

	t.Run("Fuzzy title fragment", func(t *testing.T) {
		intent := i.Interpret("finished the dentist appointment task", refNow)
		if intent.Kind != interpreter.KindCompleteTask {
			t.Fatalf("expected complete_task, got %s", intent.Kind)
		}
		if intent.Ref.TitleFragment != "dentist appointment" {
			t.Errorf("fragment = %q, want %q", intent.Ref.TitleFragment, "dentist appointment")
		}
	})
}

func TestInterpretDeleteTask(t *testing.T) {
	i := newInterpreter(t)

	intent := i.Interpret("Delete that report task", refNow)
	if intent.Kind != interpreter.KindDeleteTask {
		t.Fatalf("expected delete_task, got %s", intent.Kind)
	}
	if intent.Ref.ID != 0 {
		t.Errorf("ref id = %d, want 0 (no numeric reference)", intent.Ref.ID)
	}
	if intent.Ref.TitleFragment != "report" {
		t.Errorf("fragment = %q, want %q", intent.Ref.TitleFragment, "report")
	}
}

func TestInterpretRefFragmentIsSanitized(t *testing.T) {
	i := newInterpreter(t)

	intent := i.Interpret("delete the 50%_off promo", refNow)
	if intent.Kind != interpreter.KindDeleteTask {
		t.Fatalf("expected delete_task, got %s", intent.Kind)
	}
	if strings.ContainsAny(intent.Ref.TitleFragment, "%_") {
		t.Errorf("fragment %q contains LIKE wildcards", intent.Ref.TitleFragment)
	}
}

func TestInterpretUnknown(t *testing.T) {
	i := newInterpreter(t)

	for _, text := range []string{"asdkjasdkj", "the quick brown fox", ""} {
		intent := i.Interpret(text, refNow)
		if intent.Kind != interpreter.KindUnknown {
			t.Errorf("%q: expected unknown, got %s", text, intent.Kind)
		}
		if intent.Raw != strings.TrimSpace(text) {
			t.Errorf("%q: raw text not preserved: %q", text, intent.Raw)
		}
	}
}

func TestInterpretPrecedence(t *testing.T) {
	i := newInterpreter(t)

	// "add" appears in the text, but the complete trigger wins by priority.
	intent := i.Interpret("complete the add payment method task", refNow)
	if intent.Kind != interpreter.KindCompleteTask {
		t.Errorf("expected complete_task to win over create, got %s", intent.Kind)
	}

	intent = i.Interpret("delete the schedule review task", refNow)
	if intent.Kind != interpreter.KindDeleteTask {
		t.Errorf("expected delete_task to win over create, got %s", intent.Kind)
	}
}

func TestInterpretBoundsPathologicalInput(t *testing.T) {
	i := newInterpreter(t)

	long := "add task " + strings.Repeat("a ", 5000)
	intent := i.Interpret(long, refNow)
	if intent.Kind != interpreter.KindCreateTask {
		t.Fatalf("expected create_task for long input, got %s", intent.Kind)
	}
	if len(intent.Raw) > 2000 {
		t.Errorf("raw input not truncated: %d chars", len(intent.Raw))
	}
}

func TestInterpretTruncatesOnRuneBoundary(t *testing.T) {
	i := newInterpreter(t)

	// Multi-byte runes straddling the cap must not be split mid-sequence.
	long := "add task " + strings.Repeat("héllo wörld ", 500)
	intent := i.Interpret(long, refNow)
	if intent.Kind != interpreter.KindCreateTask {
		t.Fatalf("expected create_task for long input, got %s", intent.Kind)
	}
	if !utf8.ValidString(intent.Raw) {
		t.Error("truncated raw input is not valid UTF-8")
	}
	if !utf8.ValidString(intent.Create.Title) {
		t.Error("truncated title is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(intent.Raw); n > 2000 {
		t.Errorf("raw input not truncated: %d runes", n)
	}
}

func TestInterpretEmptyTitleStillReturned(t *testing.T) {
	i := newInterpreter(t)

	// Nothing left after stripping; intent is still returned and the
	// caller is responsible for rejecting the empty title.
	intent := i.Interpret("add task tomorrow", refNow)
	if intent.Kind != interpreter.KindCreateTask {
		t.Fatalf("expected create_task, got %s", intent.Kind)
	}
	if intent.Create.Title != "" {
		t.Errorf("title = %q, want empty", intent.Create.Title)
	}
	if intent.Create.DueDate != "2026-01-29" {
		t.Errorf("due date = %q, want 2026-01-29", intent.Create.DueDate)
	}
}
