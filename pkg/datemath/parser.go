// Package datemath resolves natural-language date and time phrases embedded
// in free text to absolute calendar dates and clock times. All math is done
// against a caller-supplied reference time so results are deterministic.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts relative date/time phrases to absolute values.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "America/New_York"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

const weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
const monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

var (
	reToday     = regexp.MustCompile(`\btoday\b`)
	reTomorrow  = regexp.MustCompile(`\btomorrow\b`)
	reInOffset  = regexp.MustCompile(`\bin (\d+) (day|days|week|weeks|month|months)\b`)
	reNextDay   = regexp.MustCompile(`\bnext (` + weekdayAlt + `)\b`)
	reBareDay   = regexp.MustCompile(`\b(` + weekdayAlt + `)\b`)
	reMonthDay  = regexp.MustCompile(`\b(` + monthAlt + `)\.? (\d{1,2})(?:st|nd|rd|th)?\b`)
	reSlashDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	reClock     = regexp.MustCompile(`\b(\d{1,2}):(\d{2}) ?(am|pm)?\b`)
	reClockHour = regexp.MustCompile(`\b(\d{1,2}) ?(am|pm)\b`)
)

// Resolve extracts the best-matching date and time phrase from the text,
// resolved against now. Components that cannot be found stay empty —
// partial extraction is not an error.
func (r *Resolver) Resolve(text string, now time.Time) Result {
	lower := strings.ToLower(text)
	lower = strings.Join(strings.Fields(lower), " ")

	return Result{
		Date: r.resolveDate(lower, now),
		Time: resolveTime(lower),
	}
}

// resolveDate runs the date phrase patterns in fixed priority order;
// relative day words beat weekday and explicit-date forms.
func (r *Resolver) resolveDate(lower string, now time.Time) string {
	ref := r.startOfDay(now)

	if reToday.MatchString(lower) {
		return r.format(ref)
	}
	if reTomorrow.MatchString(lower) {
		return r.format(ref.AddDate(0, 0, 1))
	}

	if m := reInOffset.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return r.format(ref.AddDate(0, 0, amount))
		case strings.HasPrefix(m[2], "week"):
			return r.format(ref.AddDate(0, 0, amount*7))
		case strings.HasPrefix(m[2], "month"):
			return r.format(ref.AddDate(0, amount, 0))
		}
	}

	if m := reNextDay.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[1]]
		daysUntil := int(target - ref.Weekday())
		// "next monday" said on a Monday means a full week out, never today.
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return r.format(ref.AddDate(0, 0, daysUntil))
	}

	if m := reMonthDay.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[2])
		return r.formatExplicit(months[m[1]], day, ref)
	}

	if m := reSlashDate.FindStringSubmatch(lower); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return r.formatExplicit(time.Month(month), day, ref)
		}
	}

	if m := reBareDay.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[1]]
		daysUntil := (int(target-ref.Weekday()) + 7) % 7
		return r.format(ref.AddDate(0, 0, daysUntil))
	}

	return ""
}

// formatExplicit resolves a month/day pair against the reference year,
// rolling to next year when the result would already be in the past.
func (r *Resolver) formatExplicit(month time.Month, day int, ref time.Time) string {
	date := time.Date(ref.Year(), month, day, 0, 0, 0, 0, r.location)
	if date.Month() != month || date.Day() != day {
		return "" // normalized away, e.g. february 30
	}
	if date.Before(ref) {
		date = time.Date(ref.Year()+1, month, day, 0, 0, 0, 0, r.location)
		if date.Month() != month || date.Day() != day {
			return ""
		}
	}
	return r.format(date)
}

// resolveTime extracts a clock time such as "2:30pm", "14:00" or "2pm".
func resolveTime(lower string) string {
	if m := reClock.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		hour = applyMeridiem(hour, m[3])
		if hour <= 23 && minute <= 59 {
			return fmt.Sprintf("%02d:%02d", hour, minute)
		}
	}

	if m := reClockHour.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		hour = applyMeridiem(hour, m[2])
		if hour <= 23 {
			return fmt.Sprintf("%02d:00", hour)
		}
	}

	return ""
}

func applyMeridiem(hour int, meridiem string) int {
	switch {
	case meridiem == "pm" && hour != 12:
		return hour + 12
	case meridiem == "am" && hour == 12:
		return 0
	}
	return hour
}

var stripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:by\s+|on\s+)?(?:today|tomorrow)\b`),
	regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:day|days|week|weeks|month|months)\b`),
	regexp.MustCompile(`(?i)\b(?:by\s+|on\s+)?next\s+(?:` + weekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\b(?:by\s+|on\s+)?(?:` + weekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\b(?:by\s+|on\s+)?(?:` + monthAlt + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?\b`),
	regexp.MustCompile(`(?i)\b(?:by\s+|on\s+)?\d{1,2}/\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b(?:at\s+)?\d{1,2}:\d{2}\s*(?:am|pm)?\b`),
	regexp.MustCompile(`(?i)\b(?:at\s+)?\d{1,2}\s*(?:am|pm)\b`),
}

// StripPhrases removes every recognized date/time phrase from the text,
// so callers can use the remainder as a clean task title.
func StripPhrases(text string) string {
	for _, re := range stripPatterns {
		text = re.ReplaceAllString(text, " ")
	}
	return strings.Join(strings.Fields(text), " ")
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

func (r *Resolver) format(t time.Time) string {
	return t.Format("2006-01-02")
}
