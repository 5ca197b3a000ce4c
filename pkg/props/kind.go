package props

import (
	"reflect"
	"strings"
)

// Kind is the value shape a property accepts.
type Kind int

const (
	KindAny Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindColor
	KindAlpha
	KindEnum
	KindSize
	KindAngle
	KindDashPattern
	KindInstance
	KindList
	KindDict
	KindEither
)

var kindNames = map[Kind]string{
	KindAny:         "Any",
	KindBool:        "Bool",
	KindInt:         "Int",
	KindFloat:       "Float",
	KindString:      "String",
	KindColor:       "Color",
	KindAlpha:       "Alpha",
	KindEnum:        "Enum",
	KindSize:        "Size",
	KindAngle:       "Angle",
	KindDashPattern: "DashPattern",
	KindInstance:    "Instance",
	KindList:        "List",
	KindDict:        "Dict",
	KindEither:      "Either",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Accepts reports whether v has a shape this kind can hold.
// A nil value is accepted by every kind; properties are nullable.
func (k Kind) Accepts(v any) bool {
	if v == nil {
		return true
	}
	switch k {
	case KindAny, KindEither, KindInstance:
		return true
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindInt:
		return isInteger(v)
	case KindFloat, KindSize, KindAngle:
		return isNumber(v)
	case KindAlpha:
		f, ok := toFloat(v)
		return ok && f >= 0 && f <= 1
	case KindString, KindEnum:
		_, ok := v.(string)
		return ok
	case KindColor:
		return isColor(v)
	case KindDashPattern:
		if _, ok := v.(string); ok {
			return true
		}
		return isIntSlice(v)
	case KindList:
		return reflect.TypeOf(v).Kind() == reflect.Slice
	case KindDict:
		return reflect.TypeOf(v).Kind() == reflect.Map
	default:
		return false
	}
}

// Themeable reports whether a theme may supply values of this kind. Entity
// references and containers only come from explicit attributes.
func (k Kind) Themeable() bool {
	switch k {
	case KindInstance, KindEither, KindList, KindDict:
		return false
	}
	return true
}

// holdsReference reports whether values of this kind may alias mutable state.
func (k Kind) holdsReference() bool {
	return k == KindList || k == KindDict || k == KindDashPattern
}

// mutable reports whether v is a value that would be shared by reference.
func mutable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func isIntSlice(v any) bool {
	switch v.(type) {
	case []int, []int64, []float64:
		return true
	}
	return false
}

// isColor accepts named colors, "#rgb", "#rrggbb" and "#rrggbbaa" strings.
func isColor(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	if !strings.HasPrefix(s, "#") {
		for _, r := range s {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return false
			}
		}
		return true
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Coerce converts values produced by configuration decoders to the shape k
// expects. int64 and integral float64 become int for Int; numeric lists
// become []int for DashPattern. Values that cannot be converted are returned
// unchanged so Accepts can reject them.
func (k Kind) Coerce(v any) any {
	switch k {
	case KindInt:
		switch n := v.(type) {
		case int64:
			return int(n)
		case float64:
			if n == float64(int(n)) {
				return int(n)
			}
		}
	case KindDashPattern:
		xs, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]int, 0, len(xs))
		for _, x := range xs {
			switch n := x.(type) {
			case int:
				out = append(out, n)
			case int64:
				out = append(out, int(n))
			case float64:
				out = append(out, int(n))
			default:
				return v
			}
		}
		return out
	}
	return v
}
