package task

import (
	"cmp"
	"slices"
	"sync"
)

// Compare orders tasks by priority rank, then by deadline, earliest first.
func Compare(a, b Task) int {
	if c := cmp.Compare(a.priority.Rank(), b.priority.Rank()); c != 0 {
		return c
	}
	return a.deadline.Compare(b.deadline)
}

// SortTasks sorts tasks in place with Compare. Equal tasks keep their
// relative order.
func SortTasks(tasks []Task) {
	slices.SortStableFunc(tasks, Compare)
}

// Orderer holds a multiset of tasks and lists them in Compare order.
// It is safe for concurrent use.
type Orderer struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewOrderer returns an empty Orderer.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Insert adds t. Duplicates are allowed.
func (o *Orderer) Insert(t Task) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tasks = append(o.tasks, t)
}

// ListOrdered returns a sorted copy of every inserted task. The stored
// collection is left untouched.
func (o *Orderer) ListOrdered() []Task {
	o.mu.RLock()
	out := make([]Task, len(o.tasks))
	copy(out, o.tasks)
	o.mu.RUnlock()

	SortTasks(out)
	return out
}

// Len returns the number of inserted tasks.
func (o *Orderer) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.tasks)
}
