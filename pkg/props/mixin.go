package props

import (
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Trait is a named bundle of unprefixed property declarations.
type Trait struct {
	Name  string
	Props []Property
}

// Built-in trait names.
const (
	TraitLine  = "line"
	TraitFill  = "fill"
	TraitText  = "text"
	TraitHatch = "hatch"
)

// Line joins, caps and text alignments accepted by the built-in traits.
var (
	LineJoins      = []string{"miter", "round", "bevel"}
	LineCaps       = []string{"butt", "round", "square"}
	FontStyles     = []string{"normal", "italic", "bold", "bold italic"}
	TextAligns     = []string{"left", "right", "center"}
	TextBaselines  = []string{"top", "middle", "bottom", "alphabetic", "hanging", "ideographic"}
	HatchPatterns  = []string{"blank", "dot", "ring", "horizontal_line", "vertical_line", "cross", "spiral"}
	emptyDashValue = func() any { return []int{} }
)

var (
	traitsMu sync.RWMutex
	traits   = map[string]Trait{
		TraitLine: {Name: TraitLine, Props: []Property{
			{Name: "color", Kind: KindColor, Default: Lit("black")},
			{Name: "width", Kind: KindFloat, Default: Lit(1.0)},
			{Name: "alpha", Kind: KindAlpha, Default: Lit(1.0)},
			{Name: "join", Kind: KindEnum, Default: Lit("bevel"), Choices: LineJoins},
			{Name: "cap", Kind: KindEnum, Default: Lit("butt"), Choices: LineCaps},
			{Name: "dash", Kind: KindDashPattern, Default: Fn(emptyDashValue)},
			{Name: "dash_offset", Kind: KindInt, Default: Lit(0)},
		}},
		TraitFill: {Name: TraitFill, Props: []Property{
			{Name: "color", Kind: KindColor, Default: Lit("gray")},
			{Name: "alpha", Kind: KindAlpha, Default: Lit(1.0)},
		}},
		TraitText: {Name: TraitText, Props: []Property{
			{Name: "font", Kind: KindString, Default: Lit("helvetica")},
			{Name: "font_size", Kind: KindString, Default: Lit("12pt")},
			{Name: "font_style", Kind: KindEnum, Default: Lit("normal"), Choices: FontStyles},
			{Name: "color", Kind: KindColor, Default: Lit("#444444")},
			{Name: "alpha", Kind: KindAlpha, Default: Lit(1.0)},
			{Name: "align", Kind: KindEnum, Default: Lit("left"), Choices: TextAligns},
			{Name: "baseline", Kind: KindEnum, Default: Lit("bottom"), Choices: TextBaselines},
			{Name: "line_height", Kind: KindFloat, Default: Lit(1.2)},
		}},
		TraitHatch: {Name: TraitHatch, Props: []Property{
			{Name: "color", Kind: KindColor, Default: Lit("black")},
			{Name: "alpha", Kind: KindAlpha, Default: Lit(1.0)},
			{Name: "scale", Kind: KindFloat, Default: Lit(12.0)},
			{Name: "pattern", Kind: KindEnum, Default: Nil, Choices: HatchPatterns},
			{Name: "weight", Kind: KindFloat, Default: Lit(1.0)},
		}},
	}
)

// RegisterTrait adds a trait to the process-wide trait table.
// Trait names are unique; member names must be valid property names.
func RegisterTrait(t Trait) error {
	if t.Name == "" || strings.Contains(t.Name, ":") {
		return errors.New(errors.ErrCodeInvalidMixin, "invalid trait name %q", t.Name)
	}
	seen := make(map[string]bool, len(t.Props))
	for _, p := range t.Props {
		if err := errors.ValidatePropertyName(p.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMixin, err, "trait %s", t.Name)
		}
		if seen[p.Name] {
			return errors.New(errors.ErrCodeSchemaCollision, "trait %s declares %q twice", t.Name, p.Name)
		}
		seen[p.Name] = true
		if err := p.checkDefault(p.Default); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMixin, err, "trait %s", t.Name)
		}
	}

	traitsMu.Lock()
	defer traitsMu.Unlock()
	if _, ok := traits[t.Name]; ok {
		return errors.New(errors.ErrCodeDuplicateClass, "trait %q already registered", t.Name)
	}
	t.Props = slices.Clone(t.Props)
	traits[t.Name] = t
	return nil
}

// LookupTrait returns a registered trait.
func LookupTrait(name string) (Trait, bool) {
	traitsMu.RLock()
	defer traitsMu.RUnlock()
	t, ok := traits[name]
	return t, ok
}

// TraitNames returns registered trait names in sorted order.
func TraitNames() []string {
	traitsMu.RLock()
	defer traitsMu.RUnlock()
	names := make([]string, 0, len(traits))
	for name := range traits {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MixinSpec names a trait and the prefix its members receive.
type MixinSpec struct {
	Trait  string
	Prefix string
}

// String formats the spec as "<trait>:<prefix>".
func (m MixinSpec) String() string {
	return m.Trait + ":" + m.Prefix
}

// ParseMixin parses "<trait>:<prefix>". A bare trait name means no prefix.
func ParseMixin(s string) (MixinSpec, error) {
	trait, prefix, _ := strings.Cut(s, ":")
	if trait == "" {
		return MixinSpec{}, errors.New(errors.ErrCodeInvalidMixin, "mixin %q has no trait name", s)
	}
	if err := errors.ValidatePrefix(prefix); err != nil {
		return MixinSpec{}, err
	}
	if _, ok := LookupTrait(trait); !ok {
		return MixinSpec{}, errors.New(errors.ErrCodeInvalidMixin, "unknown trait %q in mixin %q", trait, s)
	}
	return MixinSpec{Trait: trait, Prefix: prefix}, nil
}

// Expand returns the trait members with the prefix applied, in trait order.
func (m MixinSpec) Expand() ([]Property, error) {
	t, ok := LookupTrait(m.Trait)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidMixin, "unknown trait %q", m.Trait)
	}
	out := make([]Property, len(t.Props))
	for i, p := range t.Props {
		p.Name = m.Prefix + p.Name
		p.Trait = m.Trait
		p.Choices = slices.Clone(p.Choices)
		out[i] = p
	}
	return out, nil
}

// ComposeMixins expands specs in order and declares the prefixed members on s.
// Every name is checked before anything is inserted, so a failed composition
// leaves s unchanged.
func ComposeMixins(s *Schema, specs ...string) error {
	var expanded []Property
	seen := make(map[string]string)
	for _, raw := range specs {
		spec, err := ParseMixin(raw)
		if err != nil {
			return err
		}
		members, err := spec.Expand()
		if err != nil {
			return err
		}
		for _, p := range members {
			if s.Has(p.Name) {
				return errors.New(errors.ErrCodeSchemaCollision,
					"%s: mixin %s redeclares %q", s.class, raw, p.Name)
			}
			if prev, dup := seen[p.Name]; dup {
				return errors.New(errors.ErrCodeSchemaCollision,
					"%s: mixins %s and %s both declare %q", s.class, prev, raw, p.Name)
			}
			if err := errors.ValidatePropertyName(p.Name); err != nil {
				return err
			}
			seen[p.Name] = raw
			p.Owner = s.class
			expanded = append(expanded, p)
		}
	}

	for _, p := range expanded {
		if err := s.insert(p); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "insert checked mixin member")
		}
	}
	return nil
}
