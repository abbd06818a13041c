package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the label a task was submitted with. High, Medium and Low are
// the known labels; any other label is kept as entered and ranks last.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank values, lower is more urgent.
const (
	RankHigh    = 1
	RankMedium  = 2
	RankLow     = 3
	RankUnknown = 4
)

// ParsePriority trims label and canonicalises the known labels regardless of
// case ("high" -> High). Unknown labels are returned trimmed but otherwise as is.
func ParsePriority(label string) Priority {
	label = strings.TrimSpace(label)
	switch strings.ToLower(label) {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	default:
		return Priority(label)
	}
}

// Rank maps the label to its ordering rank.
func (p Priority) Rank() int {
	switch strings.ToLower(string(p)) {
	case "high":
		return RankHigh
	case "medium":
		return RankMedium
	case "low":
		return RankLow
	default:
		return RankUnknown
	}
}

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

// NewDate returns the date y-m-d. Out of range values are normalised the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// Task is an immutable record of a title, a priority label and a deadline.
type Task struct {
	id        string
	title     string
	priority  Priority
	deadline  Date
	createdAt time.Time
}

// New builds a Task. Callers validate the title; New does not.
func New(title string, priority Priority, deadline Date) Task {
	return Task{
		title:    title,
		priority: priority,
		deadline: deadline,
	}
}

// WithID returns a copy of t carrying the storage identity.
func (t Task) WithID(id string, createdAt time.Time) Task {
	t.id = id
	t.createdAt = createdAt
	return t
}

func (t Task) ID() string           { return t.id }
func (t Task) Title() string        { return t.title }
func (t Task) Priority() Priority   { return t.priority }
func (t Task) Deadline() Date       { return t.deadline }
func (t Task) CreatedAt() time.Time { return t.createdAt }

// String renders "<title> (<priority>) - Due: <deadline>".
func (t Task) String() string {
	return fmt.Sprintf("%s (%s) - Due: %s", t.title, t.priority, t.deadline)
}

// --- UseCase Inputs ---

// CreateInput is the raw, unvalidated user submission.
type CreateInput struct {
	Title    string
	Priority string
	Deadline string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task Task
}

type ListOutput struct {
	Tasks []Task
	Total int
}

// Lines renders every task in order.
func (o ListOutput) Lines() []string {
	lines := make([]string, len(o.Tasks))
	for i, t := range o.Tasks {
		lines[i] = t.String()
	}
	return lines
}
