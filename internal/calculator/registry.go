package calculator

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the set of operations an Evaluator can run.
type Registry interface {
	// Get returns the operation registered under name.
	Get(name string) (Operation, error)
	// List returns the sorted operation names.
	List() []string
	// Has reports whether name is registered.
	Has(name string) bool
}

// UnknownOperationError is returned by Get for names that are not registered.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Name)
}

// Is makes errors.Is(err, ErrUnknownOperation) hold for every name.
func (e *UnknownOperationError) Is(target error) bool { return target == ErrUnknownOperation }

// DefaultRegistry is a thread-safe Registry.
type DefaultRegistry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

var _ Registry = (*DefaultRegistry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{ops: make(map[string]Operation)}
}

// NewDefaultRegistry returns a registry holding every engine operation.
func NewDefaultRegistry() *DefaultRegistry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// Register adds op, replacing any operation with the same name.
func (r *DefaultRegistry) Register(op Operation) error {
	if op.Name == "" {
		return fmt.Errorf("operation name is empty")
	}
	if op.Apply == nil {
		return fmt.Errorf("operation %s has no apply function", op.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
	return nil
}

// Get returns the operation registered under name.
func (r *DefaultRegistry) Get(name string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, &UnknownOperationError{Name: name}
	}
	return op, nil
}

// MustGet is like Get but panics when name is not registered.
func (r *DefaultRegistry) MustGet(name string) Operation {
	op, err := r.Get(name)
	if err != nil {
		panic(fmt.Sprintf("calculator: required operation not found: %s", name))
	}
	return op
}

// List returns the registered names in alphabetical order.
func (r *DefaultRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *DefaultRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ops[name]
	return ok
}

// All returns the registered operations sorted by name.
func (r *DefaultRegistry) All() []Operation {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0, len(names))
	for _, name := range names {
		if op, ok := r.ops[name]; ok {
			ops = append(ops, op)
		}
	}
	return ops
}

var globalRegistry = NewDefaultRegistry()

// GlobalRegistry returns the process-wide registry.
func GlobalRegistry() *DefaultRegistry {
	return globalRegistry
}
