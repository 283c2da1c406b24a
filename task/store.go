package task

import (
	"sort"
	"strconv"
	"strings"
)

// Store is the ordered collection of all task records for one file.
// The order is the order the records were read in, which is not
// necessarily ascending by id. Mutating operations return a new Store
// and never modify the receiver.
type Store struct {
	tasks []Task
}

// NewStore builds a store from a list of tasks, preserving their order.
func NewStore(tasks []Task) Store {
	copied := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		copied = append(copied, t.clone())
	}
	return Store{tasks: copied}
}

// Len returns the number of tasks in the store.
func (s Store) Len() int {
	return len(s.tasks)
}

// Empty returns true when the store holds no tasks.
func (s Store) Empty() bool {
	return len(s.tasks) == 0
}

// Tasks returns the tasks in storage order.
func (s Store) Tasks() []Task {
	result := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result = append(result, t.clone())
	}
	return result
}

// Sorted returns the tasks sorted ascending by id.
func (s Store) Sorted() []Task {
	result := s.Tasks()
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lines serializes every task in storage order.
func (s Store) Lines() []string {
	lines := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		lines = append(lines, t.Line())
	}
	return lines
}

// Get returns the task with the given id.
func (s Store) Get(id int) (Task, bool) {
	index, ok := s.find(id)
	if !ok {
		return Task{}, false
	}
	return s.tasks[index].clone(), true
}

// NextID returns max(existing ids)+1, or 1 for an empty store. Gaps
// below the maximum are never refilled.
func (s Store) NextID() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// ParseID converts a raw command-line id into an integer. A non-numeric
// id is reported the same way as a missing task.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s Store) find(id int) (int, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// withTask returns a copy of the store with the task at index replaced.
func (s Store) withTask(index int, t Task) Store {
	tasks := make([]Task, len(s.tasks))
	copy(tasks, s.tasks)
	tasks[index] = t
	return Store{tasks: tasks}
}

// withAppended returns a copy of the store with the task appended.
func (s Store) withAppended(t Task) Store {
	tasks := make([]Task, 0, len(s.tasks)+1)
	tasks = append(tasks, s.tasks...)
	tasks = append(tasks, t)
	return Store{tasks: tasks}
}

// without returns a copy of the store with the task at index removed.
// The ids of the remaining tasks are never renumbered.
func (s Store) without(index int) Store {
	tasks := make([]Task, 0, len(s.tasks)-1)
	tasks = append(tasks, s.tasks[:index]...)
	tasks = append(tasks, s.tasks[index+1:]...)
	return Store{tasks: tasks}
}
