package task_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/task"
)

func mustTask(title, priority, deadline string) task.Task {
	d, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		panic(err)
	}
	return task.New(title, task.ParsePriority(priority), task.DateOf(d))
}

func lines(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.String()
	}
	return out
}

func TestOrdererExample(t *testing.T) {
	o := task.NewOrderer()
	o.Insert(mustTask("Write report", "Medium", "2024-06-10"))
	o.Insert(mustTask("Fix bug", "High", "2024-06-01"))
	o.Insert(mustTask("Plan trip", "Low", "2024-05-01"))

	assert.Equal(t, []string{
		"Fix bug (High) - Due: 2024-06-01",
		"Write report (Medium) - Due: 2024-06-10",
		"Plan trip (Low) - Due: 2024-05-01",
	}, lines(o.ListOrdered()))
}

func TestOrdererSameRankEarlierDeadlineFirst(t *testing.T) {
	o := task.NewOrderer()
	o.Insert(mustTask("Later", "High", "2024-01-02"))
	o.Insert(mustTask("Sooner", "High", "2024-01-01"))

	got := o.ListOrdered()
	require.Len(t, got, 2)
	assert.Equal(t, "Sooner", got[0].Title())
	assert.Equal(t, "Later", got[1].Title())
}

func TestOrdererUnknownPrioritySortsLast(t *testing.T) {
	o := task.NewOrderer()
	o.Insert(mustTask("Escalation", "Urgent", "2020-01-01"))
	o.Insert(mustTask("Chore", "Low", "2030-01-01"))
	o.Insert(mustTask("Hotfix", "high", "2030-01-01"))

	assert.Equal(t, []string{"Hotfix", "Chore", "Escalation"}, titles(o.ListOrdered()))
}

func TestOrdererTiesKeepInsertionOrder(t *testing.T) {
	o := task.NewOrderer()
	o.Insert(mustTask("first", "Medium", "2024-03-03"))
	o.Insert(mustTask("second", "Medium", "2024-03-03"))
	o.Insert(mustTask("third", "Medium", "2024-03-03"))

	assert.Equal(t, []string{"first", "second", "third"}, titles(o.ListOrdered()))
}

func TestOrdererListIsIdempotentAndNonDestructive(t *testing.T) {
	o := task.NewOrderer()
	assert.Empty(t, o.ListOrdered())

	o.Insert(mustTask("b", "Low", "2024-01-01"))
	o.Insert(mustTask("a", "High", "2024-01-01"))

	first := o.ListOrdered()
	second := o.ListOrdered()
	assert.Equal(t, lines(first), lines(second))
	assert.Equal(t, 2, o.Len())

	// Mutating a returned slice must not reach the stored collection.
	first[0] = mustTask("mutated", "High", "1999-01-01")
	assert.Equal(t, lines(second), lines(o.ListOrdered()))

	o.Insert(mustTask("c", "Medium", "2024-01-01"))
	assert.Equal(t, []string{"a", "c", "b"}, titles(o.ListOrdered()))
}

func TestOrdererDuplicatesAllowed(t *testing.T) {
	o := task.NewOrderer()
	dup := mustTask("same", "High", "2024-01-01")
	o.Insert(dup)
	o.Insert(dup)
	assert.Equal(t, 2, o.Len())
	assert.Len(t, o.ListOrdered(), 2)
}

func TestOrdererInsertOrderInsensitive(t *testing.T) {
	priorities := []string{"High", "Medium", "Low", "Urgent", "low", "HIGH"}
	rng := rand.New(rand.NewSource(42))

	var tasks []task.Task
	for i := 0; i < 60; i++ {
		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365))
		tasks = append(tasks, task.New(
			"t",
			task.ParsePriority(priorities[rng.Intn(len(priorities))]),
			task.DateOf(day),
		))
	}

	reference := task.NewOrderer()
	for _, tk := range tasks {
		reference.Insert(tk)
	}
	want := lines(reference.ListOrdered())

	for round := 0; round < 5; round++ {
		shuffled := append([]task.Task(nil), tasks...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		o := task.NewOrderer()
		for _, tk := range shuffled {
			o.Insert(tk)
		}
		got := o.ListOrdered()
		require.Len(t, got, len(tasks))
		assert.Equal(t, want, lines(got))

		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			require.LessOrEqual(t, prev.Priority().Rank(), cur.Priority().Rank())
			if prev.Priority().Rank() == cur.Priority().Rank() {
				require.False(t, cur.Deadline().Before(prev.Deadline()), "deadline out of order at %d", i)
			}
		}
	}
}

func TestOrdererConcurrentInsertAndList(t *testing.T) {
	o := task.NewOrderer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				o.Insert(mustTask("job", "Medium", "2024-02-02"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = o.ListOrdered()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, o.Len())
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title()
	}
	return out
}
