package usecase

import "personal-secretary/internal/model"

// clampPriority maps a raw priority to the 1-5 scale; zero means unset
// and resolves to the midpoint default.
func clampPriority(v int) int {
	switch {
	case v == 0:
		return model.PriorityDefault
	case v < model.PriorityMin:
		return model.PriorityMin
	case v > model.PriorityMax:
		return model.PriorityMax
	default:
		return v
	}
}

// coalesce returns the first non-empty string — used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// coalesceInt returns newVal unless it is zero.
func coalesceInt(newVal, existing int) int {
	if newVal != 0 {
		return newVal
	}
	return existing
}
