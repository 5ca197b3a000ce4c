package props

// Default is the default value of a property: either a [Literal] shared by
// every instance or a [Factory] invoked once per instance.
type Default interface {
	resolve() any
	isFactory() bool
}

// Literal is a default value shared across instances.
// Only immutable values may be literals; the builder rejects slices and maps.
type Literal struct {
	Value any
}

func (l Literal) resolve() any    { return l.Value }
func (l Literal) isFactory() bool { return false }

// Factory produces a fresh default value for each instance.
type Factory struct {
	New func() any
}

func (f Factory) resolve() any {
	if f.New == nil {
		return nil
	}
	return f.New()
}

func (f Factory) isFactory() bool { return true }

// Lit returns a literal default.
func Lit(v any) Literal { return Literal{Value: v} }

// Fn returns a factory default.
func Fn(f func() any) Factory { return Factory{New: f} }

// Nil is the literal default for properties that start unset.
var Nil = Lit(nil)

// Resolve returns the value d produces for a new instance: the identical
// literal, or the result of a fresh factory call.
func Resolve(d Default) any {
	if d == nil {
		return nil
	}
	return d.resolve()
}

// IsFactory reports whether d is a factory default.
func IsFactory(d Default) bool {
	return d != nil && d.isFactory()
}

// EmptyList is a factory producing a new empty []any.
func EmptyList() Factory { return Fn(func() any { return []any{} }) }

// EmptyDict is a factory producing a new empty map[string]any.
func EmptyDict() Factory { return Fn(func() any { return map[string]any{} }) }
