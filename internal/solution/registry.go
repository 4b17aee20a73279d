package solution

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maintains compiled-in solutions keyed by day. A registered day
// takes precedence over its interpreted days/dayNN.go file, so a solver
// that outgrows the interpreter can move into the build.
type Registry struct {
	mu        sync.RWMutex
	solutions map[int]Solution
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solutions: map[int]Solution{}}
}

// Default is the process-wide registry. Compiled solvers install themselves
// here from init functions; the runner checks it before interpreting.
var Default = NewRegistry()

// Register installs a solution. Returns an error if the day already exists
// or is out of the advent range.
func (r *Registry) Register(s Solution) error {
	if s.Day < FirstDay || s.Day > LastDay {
		return fmt.Errorf("solution: day %d out of range", s.Day)
	}
	if s.PartOne == nil {
		return fmt.Errorf("solution: day %d has no part one", s.Day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.solutions[s.Day]; exists {
		return fmt.Errorf("solution: day %d already registered", s.Day)
	}
	r.solutions[s.Day] = s
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(s Solution) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Resolve returns the solution for a day.
func (r *Registry) Resolve(day int) (Solution, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solutions[day]
	return s, ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solutions))
	for day := range r.solutions {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
