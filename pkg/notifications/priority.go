package notifications

import (
	"fmt"
	"strings"
)

// Priority is how urgently a message should reach its recipient.
// Values outside the three constants can reach adapters (for example from a
// caller building a Channel call by hand); each adapter documents how it
// treats them.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Rank orders priorities: HIGH 3, MEDIUM 2, LOW 1, anything else 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority accepts the priority names in any case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}
