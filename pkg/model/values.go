package model

import (
	"github.com/matzehuels/plotkit/pkg/errors"
)

// Value returns the attribute name of obj converted to T.
// ok is false when the attribute is undeclared, nil, or of another type.
func Value[T any](obj Object, name string) (T, bool) {
	var zero T
	v, err := obj.Base().Get(name)
	if err != nil || v == nil {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Float returns a numeric attribute as float64.
func Float(obj Object, name string) (float64, bool) {
	v, err := obj.Base().Get(name)
	if err != nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// Int returns an integer attribute as int.
func Int(obj Object, name string) (int, bool) {
	v, err := obj.Base().Get(name)
	if err != nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// String returns a string attribute.
func String(obj Object, name string) (string, bool) {
	return Value[string](obj, name)
}

// List returns a list attribute as []T, converting []any element by element.
// Elements that are not T are skipped.
func List[T any](obj Object, name string) []T {
	v, err := obj.Base().Get(name)
	if err != nil || v == nil {
		return nil
	}
	switch xs := v.(type) {
	case []T:
		return xs
	case []any:
		out := make([]T, 0, len(xs))
		for _, x := range xs {
			if t, ok := x.(T); ok {
				out = append(out, t)
			}
		}
		return out
	}
	return nil
}

// SetAll applies Set for each attribute on every object, stopping at the
// first error.
func SetAll(attrs Attrs, objs ...Object) error {
	for _, o := range objs {
		if o == nil {
			return errors.New(errors.ErrCodeInvalidInput, "nil object")
		}
		if err := o.Base().Update(attrs); err != nil {
			return err
		}
	}
	return nil
}
