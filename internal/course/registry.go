package course

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// Options carries everything a policy factory may need.
type Options struct {
	Cols     int
	Patterns []string
	RNG      *rand.Rand
}

// Factory builds a generator for a registered policy.
type Factory func(opts Options) (Generator, error)

// PolicyInfo contains metadata about a registered policy.
type PolicyInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Policy ids registered by this package.
const (
	PolicyPattern = "pattern"
	PolicyPath    = "path"
)

// Register adds a policy factory to the registry.
// Panics if a policy with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("course: policy %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns all registered policies, sorted by ID.
func List() []PolicyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PolicyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PolicyInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a generator for the policy id.
// Returns an error if the policy is unknown or the options are invalid.
func Create(id string, opts Options) (Generator, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("course: unknown policy %q", id)
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewSource(1))
	}
	return f(opts)
}

// Exists checks if a policy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

func init() {
	Register(PolicyPattern, "Pattern cycle (smooth drift through curated rows)", func(opts Options) (Generator, error) {
		patterns := opts.Patterns
		if patterns == nil {
			patterns = DefaultPatterns
		}
		return NewPatternCycle(opts.Cols, patterns, opts.RNG)
	})
	Register(PolicyPath, "Path window (random 1-3 lane gap per row)", func(opts Options) (Generator, error) {
		return NewPathWindow(opts.Cols, opts.RNG)
	})
}
