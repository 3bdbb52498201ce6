// Package output provides formatters for displaying a compiled plan and the
// outcome of applying it (pretty, plain, json).
//
// The package uses a registry pattern so formatter implementations can be
// selected by name at runtime:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/mattgleeson/edmv/pkg/edmv/plan"
)

// Result contains the complete output data for formatting: the compiled
// plan plus metadata about the run.
type Result struct {
	// Plan is the compiled operation sequence.
	Plan *plan.Plan `json:"plan"`

	// Inputs is the number of files in the batch, including no-ops.
	Inputs int `json:"inputs"`

	// DryRun indicates the plan was not applied.
	DryRun bool `json:"dry_run"`

	// Applied indicates the plan was applied successfully.
	Applied bool `json:"applied"`
}

// Unchanged returns the number of batch entries that produced no operation.
// Temporary hops inflate the rename count, so this is a floor, not exact,
// once cycles are involved; callers that need precision should count before
// resolution.
func (r *Result) Unchanged() int {
	n := r.Inputs - len(r.Plan.Deletes) - len(r.Plan.Renames)
	if n < 0 {
		return 0
	}
	return n
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
