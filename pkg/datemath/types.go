package datemath

// Result holds the date and time extracted from a piece of text.
// Empty string means the component was not present.
type Result struct {
	Date string // ISO calendar date, YYYY-MM-DD
	Time string // 24-hour clock time, HH:MM
}

// HasDate reports whether a calendar date was resolved.
func (r Result) HasDate() bool { return r.Date != "" }

// HasTime reports whether a clock time was resolved.
func (r Result) HasTime() bool { return r.Time != "" }
