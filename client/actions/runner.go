package actions

// Handle identifies a task started on a Runner.
type Handle uint64

type task struct {
	handle    Handle
	action    Action
	done      bool
	cancelled bool
}

// Runner drives actions once per frame. Every action runs as a task with a
// handle so it can be cancelled on its own instead of clearing everything.
// A Runner is not safe for concurrent use; it belongs to the update loop.
type Runner struct {
	tasks []*task
	next  Handle
}

func NewRunner() *Runner {
	return &Runner{}
}

// Run starts action on the next Update and returns its handle.
func (r *Runner) Run(action Action) Handle {
	r.next++
	r.tasks = append(r.tasks, &task{
		handle: r.next,
		action: action,
	})
	return r.next
}

// Cancel stops the task. It reports whether the task was still running.
func (r *Runner) Cancel(handle Handle) bool {
	for _, t := range r.tasks {
		if t.handle == handle && !t.done && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	return false
}

// CancelAll stops every task.
func (r *Runner) CancelAll() {
	for _, t := range r.tasks {
		t.cancelled = true
	}
}

// Running reports whether the task is still scheduled.
func (r *Runner) Running(handle Handle) bool {
	for _, t := range r.tasks {
		if t.handle == handle {
			return !t.done && !t.cancelled
		}
	}
	return false
}

// Len returns the number of scheduled tasks.
func (r *Runner) Len() int {
	n := 0
	for _, t := range r.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

// Update advances every task by dt seconds. Tasks started or cancelled by
// an action during the update take effect immediately for cancellation and
// on the next update for new tasks.
func (r *Runner) Update(dt float64) {
	current := make([]*task, len(r.tasks))
	copy(current, r.tasks)

	for _, t := range current {
		if t.done || t.cancelled {
			continue
		}
		if _, done := t.action.Update(dt); done {
			t.done = true
		}
	}

	live := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.done && !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(r.tasks); i++ {
		r.tasks[i] = nil
	}
	r.tasks = live
}
