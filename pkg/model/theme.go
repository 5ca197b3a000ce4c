package model

import (
	"reflect"
	"sync"
)

// Theme supplies per-class attribute defaults that take precedence over the
// schema defaults at construction time.
type Theme interface {
	// Lookup returns the themed value of attr for exactly class.
	Lookup(class, attr string) (any, bool)
}

// MapTheme is a Theme backed by nested maps: class -> attr -> value.
type MapTheme map[string]map[string]any

// Lookup implements Theme.
func (t MapTheme) Lookup(class, attr string) (any, bool) {
	attrs, ok := t[class]
	if !ok {
		return nil, false
	}
	v, ok := attrs[attr]
	return v, ok
}

var (
	currentTheme Theme
	themeMu      sync.RWMutex
)

// SetTheme installs the process-wide theme used by subsequent constructions.
// Passing nil removes it. Already constructed entities are not affected.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// CurrentTheme returns the installed theme, or nil.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// themeValue walks lineage from the most derived class and returns the first
// themed value, copied so instances never share a mutable theme entry.
func themeValue(t Theme, lineage []string, attr string) (any, bool) {
	for _, class := range lineage {
		if v, ok := t.Lookup(class, attr); ok {
			return cloneValue(v), true
		}
	}
	return nil, false
}

// cloneValue returns a deep copy of the slices and maps in v.
func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			cp.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return cp
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return cp
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(deepCopy(rv.Elem()))
		return out
	}
	return rv
}
