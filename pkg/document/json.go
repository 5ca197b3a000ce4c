package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/matzehuels/plotkit/pkg/model"
)

type jsonDoc struct {
	Roots      []string  `json:"roots"`
	References []jsonRef `json:"references"`
}

type jsonRef struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

// WriteJSON encodes every entity reachable from roots as JSON and writes it
// to w. Entities appear once in the references list; attribute values that
// hold an entity are written as {"id": "..."}.
func WriteJSON(w io.Writer, roots ...model.Object) error {
	out := jsonDoc{Roots: make([]string, 0, len(roots))}
	for _, r := range roots {
		if r != nil {
			out.Roots = append(out.Roots, r.ID())
		}
	}
	for _, o := range Collect(roots...) {
		attrs := o.Base().Attrs()
		ref := jsonRef{ID: o.ID(), Type: o.Class(), Attributes: make(map[string]any, len(attrs))}
		for name, v := range attrs {
			ref.Attributes[name] = encode(reflect.ValueOf(v))
		}
		out.References = append(out.References, ref)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the entity graph reachable from roots to a JSON file at
// path.
func ExportJSON(path string, roots ...model.Object) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, roots...)
}

// encode converts v to a JSON-ready value, replacing entities by references.
// Functions and channels encode as null.
func encode(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
	}
	if v.CanInterface() {
		if o, ok := v.Interface().(model.Object); ok {
			return map[string]string{"id": o.ID()}
		}
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return encode(v.Elem())
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = encode(v.Index(i))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = encode(iter.Value())
		}
		return out
	case reflect.Struct:
		t := v.Type()
		out := make(map[string]any, v.NumField())
		for i := range v.NumField() {
			if f := t.Field(i); f.IsExported() {
				out[f.Name] = encode(v.Field(i))
			}
		}
		return out
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil
	}
	return v.Interface()
}
