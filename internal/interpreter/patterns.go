package interpreter

import "regexp"

// Intent classification is an ordered cascade: the first rule whose pattern
// matches wins. Complete beats delete beats list beats create, so that
// "mark done buy milk task" never reads as a creation.
type rule struct {
	kind Kind
	re   *regexp.Regexp
}

var intentRules = []rule{
	{KindCompleteTask, regexp.MustCompile(`(?i)\b(complete|finished|finish|mark (as )?done|check off|done with)\b`)},
	{KindDeleteTask, regexp.MustCompile(`(?i)\b(delete|remove|cancel|clear)\b`)},
	{KindListTasks, regexp.MustCompile(`(?i)\b(show|list|display|what are)\b|\bwhat'?s\b.*\b(on my|my)\b.*\b(agenda|schedule|plate|list)\b`)},
	{KindCreateTask, regexp.MustCompile(`(?i)\b(add|create|schedule|remind me to|set up|i need to|gotta|have to)\b`)},
}

var (
	// Trigger phrases removed from titles. Multi-word phrases first so
	// "remind me to" is not half-stripped by "me".
	reCreateTriggers = regexp.MustCompile(`(?i)\b(remind me to|i need to|set up|add task|have to|gotta|add|create|schedule)\b`)
	reRefTriggers    = regexp.MustCompile(`(?i)\b(mark (as )?done|check off|done with|complete|finished|finish|delete|remove|cancel|clear|number|that|this|the|my|please)\b`)
	reTaskWord       = regexp.MustCompile(`(?i)\btasks?\b`)

	// Numeric task references: "task number 3", "task 3", "#3".
	reNumericRef = regexp.MustCompile(`(?i)(?:\btasks?\s+(?:number\s+)?|#)(\d+)\b`)

	// Importance/urgency keywords, word-boundary anchored. Low-priority
	// phrases are checked first so "low priority" never hits "priority".
	reLowPriority  = regexp.MustCompile(`(?i)\b(low priority|whenever|someday|eventually)\b`)
	reHighPriority = regexp.MustCompile(`(?i)\b(urgent|critical|important|asap|top priority|high priority|priority)\b`)

	// List filter keywords.
	reFilterToday     = regexp.MustCompile(`(?i)\btoday\b`)
	reFilterTomorrow  = regexp.MustCompile(`(?i)\btomorrow\b`)
	reFilterWeek      = regexp.MustCompile(`(?i)\b(this )?week\b`)
	reFilterMonth     = regexp.MustCompile(`(?i)\b(this )?month\b`)
	reFilterUrgent    = regexp.MustCompile(`(?i)\b(urgent|urgency|critical)\b`)
	reFilterImportant = regexp.MustCompile(`(?i)\b(important|importance)\b`)
)
