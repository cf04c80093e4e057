package notifications

import (
	"fmt"
	"strings"
)

// Message is what a notification hands to its channel.
type Message struct {
	Recipient string
	Subject   string
	Body      string
	Priority  Priority
}

// Category selects how a notification rewrites the message and which
// priority it carries.
type Category string

const (
	CategoryUrgent      Category = "urgent"
	CategoryInformative Category = "informative"
	CategoryMarketing   Category = "marketing"
)

const (
	urgentSubjectPrefix      = "URGENTE: "
	urgentBodyPrefix         = "ATENCIÓN INMEDIATA REQUERIDA:\n"
	informativeSubjectPrefix = "Info: "
	marketingFooter          = "\n\nGracias por ser parte de nuestra comunidad!"
)

type composer func(recipient, subject, body string) Message

var composers = map[Category]composer{
	CategoryUrgent: func(recipient, subject, body string) Message {
		return Message{
			Recipient: recipient,
			Subject:   urgentSubjectPrefix + subject,
			Body:      urgentBodyPrefix + body,
			Priority:  PriorityHigh,
		}
	},
	CategoryInformative: func(recipient, subject, body string) Message {
		return Message{
			Recipient: recipient,
			Subject:   informativeSubjectPrefix + subject,
			Body:      body,
			Priority:  PriorityMedium,
		}
	},
	CategoryMarketing: func(recipient, subject, body string) Message {
		return Message{
			Recipient: recipient,
			Subject:   subject,
			Body:      body + marketingFooter,
			Priority:  PriorityLow,
		}
	},
}

// Categories lists the known categories.
func Categories() []Category {
	return []Category{CategoryUrgent, CategoryInformative, CategoryMarketing}
}

// ParseCategory accepts the category names in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := composers[c]
	return ok
}

// Compose builds the message a notification of this category sends. The
// result depends only on the category and the arguments.
func (c Category) Compose(recipient, subject, body string) (Message, error) {
	compose, ok := composers[c]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return compose(recipient, subject, body), nil
}

// Priority returns the priority every message of this category carries, or
// an empty Priority for unknown categories.
func (c Category) Priority() Priority {
	m, err := c.Compose("", "", "")
	if err != nil {
		return ""
	}
	return m.Priority
}

func (c Category) String() string {
	return string(c)
}
