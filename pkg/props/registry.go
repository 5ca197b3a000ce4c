package props

import (
	"slices"
	"sync"

	"github.com/matzehuels/plotkit/pkg/errors"
)

var (
	classes   = make(map[string]*Schema)
	classesMu sync.RWMutex
)

// Register adds a finished schema to the process-wide class table.
// Class names are unique.
func Register(s *Schema) error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidInput, "schema is nil")
	}
	classesMu.Lock()
	defer classesMu.Unlock()
	if _, ok := classes[s.class]; ok {
		return errors.New(errors.ErrCodeDuplicateClass, "class %q already registered", s.class)
	}
	classes[s.class] = s
	return nil
}

// LookupClass returns the registered schema for class.
func LookupClass(class string) (*Schema, error) {
	classesMu.RLock()
	defer classesMu.RUnlock()
	s, ok := classes[class]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownClass, "unknown class %q", class)
	}
	return s, nil
}

// Classes returns registered class names in sorted order.
func Classes() []string {
	classesMu.RLock()
	defer classesMu.RUnlock()
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Subclasses returns the registered classes whose lineage includes class,
// class itself included when registered.
func Subclasses(class string) []string {
	classesMu.RLock()
	defer classesMu.RUnlock()
	var out []string
	for name, s := range classes {
		if s.IsA(class) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
