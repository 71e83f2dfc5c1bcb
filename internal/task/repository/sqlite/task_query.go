package sqlite

import (
	"strings"

	repo "personal-secretary/internal/task/repository"
)

// buildTaskFilter assembles the WHERE clause for ListTasks. All non-zero
// fields are combined as AND conditions.
func buildTaskFilter(opt repo.ListTasksOptions) (string, []any) {
	conds := []string{"1=1"}
	var args []any

	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, opt.Status)
	} else {
		// Default view hides finished work.
		conds = append(conds, "status != 'completed'")
	}

	if opt.DueFrom != "" {
		conds = append(conds, "due_date != '' AND due_date >= ?")
		args = append(args, opt.DueFrom)
	}
	if opt.DueTo != "" {
		conds = append(conds, "due_date != '' AND due_date <= ?")
		args = append(args, opt.DueTo)
	}
	if opt.MinImportance > 0 {
		conds = append(conds, "importance >= ?")
		args = append(args, opt.MinImportance)
	}
	if opt.MinUrgency > 0 {
		conds = append(conds, "urgency >= ?")
		args = append(args, opt.MinUrgency)
	}

	return strings.Join(conds, " AND "), args
}

// orderClause maps a sort key to a deterministic ORDER BY. Tasks without a
// due date sort last under due_date ordering.
func orderClause(sortBy string) string {
	switch sortBy {
	case "urgency":
		return "ORDER BY urgency DESC, due_date, due_time"
	case "importance":
		return "ORDER BY importance DESC, due_date, due_time"
	case "created_at":
		return "ORDER BY created_at DESC"
	default:
		return "ORDER BY CASE WHEN due_date = '' THEN 1 ELSE 0 END, due_date, due_time"
	}
}
