package document

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
)

// Ref is one attribute reference between two entities.
type Ref struct {
	From model.Object
	To   model.Object
	Attr string
	Back bool // range back-reference
}

// Collect returns every entity reachable from roots, roots first, each once.
// Attributes are visited in sorted name order.
func Collect(roots ...model.Object) []model.Object {
	var (
		out   []model.Object
		seen  = make(map[string]bool)
		queue []model.Object
	)
	push := func(o model.Object) {
		if o == nil || seen[o.ID()] {
			return
		}
		seen[o.ID()] = true
		queue = append(queue, o)
	}
	for _, r := range roots {
		push(r)
	}
	for len(queue) > 0 {
		obj := queue[0]
		queue = queue[1:]
		out = append(out, obj)
		for _, ref := range refsFrom(obj) {
			push(ref.To)
		}
	}
	return out
}

// References returns the references held by objs, in order of objs and then
// attribute name. Repeated references (the same range linked twice) appear
// once per occurrence.
func References(objs []model.Object) []Ref {
	var out []Ref
	for _, o := range objs {
		out = append(out, refsFrom(o)...)
	}
	return out
}

func refsFrom(obj model.Object) []Ref {
	attrs := obj.Base().Attrs()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)

	var out []Ref
	for _, name := range names {
		walk(reflect.ValueOf(attrs[name]), func(to model.Object) {
			out = append(out, Ref{From: obj, To: to, Attr: name, Back: name == models.BackrefAttr})
		})
	}
	return out
}

// walk calls visit for every entity held in v, descending into interfaces,
// slices, arrays, maps (sorted by key) and exported struct fields.
func walk(v reflect.Value, visit func(model.Object)) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem(), visit)
		}
		return
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
	}
	if v.CanInterface() {
		if o, ok := v.Interface().(model.Object); ok {
			visit(o)
			return
		}
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			walk(v.Index(i), visit)
		}
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
		for _, k := range keys {
			walk(v.MapIndex(k), visit)
		}
	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			if t.Field(i).IsExported() {
				walk(v.Field(i), visit)
			}
		}
	}
}
