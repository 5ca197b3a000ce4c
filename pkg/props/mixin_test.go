package props

import (
	"slices"
	"testing"

	"github.com/matzehuels/plotkit/pkg/errors"
)

func TestParseMixin(t *testing.T) {
	tests := []struct {
		input    string
		want     MixinSpec
		wantCode errors.Code
	}{
		{"line:outline_line_", MixinSpec{Trait: "line", Prefix: "outline_line_"}, ""},
		{"fill", MixinSpec{Trait: "fill"}, ""},
		{"fill:", MixinSpec{Trait: "fill"}, ""},
		{":border_", MixinSpec{}, errors.ErrCodeInvalidMixin},
		{"glow:x_", MixinSpec{}, errors.ErrCodeInvalidMixin},
		{"line:Bad Prefix", MixinSpec{}, errors.ErrCodeInvalidMixin},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMixin(tt.input)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("ParseMixin(%q) error = %v, want %s", tt.input, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMixin(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMixin(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComposeMixinsDisjointPrefixes(t *testing.T) {
	specs := []string{"line:outline_line_", "fill:background_fill_", "fill:border_fill_", "text:title_text_"}
	s := NewSchema("Composite", nil)
	if err := ComposeMixins(s, specs...); err != nil {
		t.Fatalf("ComposeMixins: %v", err)
	}

	var want []string
	for _, raw := range specs {
		spec, _ := ParseMixin(raw)
		members, _ := spec.Expand()
		for _, p := range members {
			want = append(want, p.Name)
		}
	}
	if got := s.Names(); !slices.Equal(got, want) {
		t.Errorf("Names = %v\nwant %v", got, want)
	}

	p, err := s.Lookup("outline_line_dash")
	if err != nil {
		t.Fatal(err)
	}
	if p.Trait != TraitLine || p.Owner != "Composite" || p.Kind != KindDashPattern {
		t.Errorf("outline_line_dash = %+v", p)
	}
}

func TestComposeMixinsCollision(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		specs    []string
	}{
		{"same prefix different traits", nil, []string{"fill:border_", "line:border_"}},
		{"same spec twice", nil, []string{"fill:background_fill_", "fill:background_fill_"}},
		{"against declared property", []string{"border_color"}, []string{"fill:border_"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSchema("Clash", nil)
			for _, name := range tt.existing {
				if err := s.Define(name, KindColor, Lit("red")); err != nil {
					t.Fatal(err)
				}
			}
			before := s.Names()
			err := ComposeMixins(s, tt.specs...)
			if !errors.Is(err, errors.ErrCodeSchemaCollision) {
				t.Fatalf("ComposeMixins error = %v, want SCHEMA_COLLISION", err)
			}
			if got := s.Names(); !slices.Equal(got, before) {
				t.Errorf("failed composition modified schema: %v", got)
			}
		})
	}
}

func TestMixinOverrideKeepsDeclaration(t *testing.T) {
	s, err := Class("Framed").
		Mixins("line:outline_line_").
		Override("outline_line_color", Lit("#e5e5e5")).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	p, _ := s.Lookup("outline_line_color")
	if got := Resolve(p.Default); got != "#e5e5e5" {
		t.Errorf("default = %v, want #e5e5e5", got)
	}
	if p.Trait != TraitLine || p.Kind != KindColor {
		t.Errorf("override changed declaration: %+v", p)
	}

	line, _ := LookupTrait(TraitLine)
	if got := Resolve(line.Props[0].Default); got != "black" {
		t.Errorf("trait default mutated to %v", got)
	}
}

func TestTraitDashDefaultIsFresh(t *testing.T) {
	s := NewSchema("Dashed", nil)
	if err := ComposeMixins(s, "line:"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Default("dash")
	b, _ := s.Default("dash")
	grown := append(a.([]int), 4)
	if len(grown) != 1 || len(b.([]int)) != 0 {
		t.Error("dash factory shared state")
	}
}

func TestRegisterTrait(t *testing.T) {
	name := "custom_trait"
	if _, ok := LookupTrait(name); !ok {
		err := RegisterTrait(Trait{Name: name, Props: []Property{
			{Name: "radius", Kind: KindFloat, Default: Lit(4.0)},
			{Name: "units", Kind: KindEnum, Default: Lit("screen"), Choices: []string{"screen", "data"}},
		}})
		if err != nil {
			t.Fatalf("RegisterTrait: %v", err)
		}
	}
	if !slices.Contains(TraitNames(), name) {
		t.Error("TraitNames missing custom_trait")
	}
	if err := RegisterTrait(Trait{Name: name}); !errors.Is(err, errors.ErrCodeDuplicateClass) {
		t.Errorf("duplicate RegisterTrait = %v", err)
	}
	if err := RegisterTrait(Trait{Name: "bad:name"}); !errors.Is(err, errors.ErrCodeInvalidMixin) {
		t.Errorf("RegisterTrait bad name = %v", err)
	}
	if err := RegisterTrait(Trait{Name: "twice", Props: []Property{
		{Name: "a", Kind: KindInt, Default: Lit(1)},
		{Name: "a", Kind: KindInt, Default: Lit(1)},
	}}); !errors.Is(err, errors.ErrCodeSchemaCollision) {
		t.Errorf("RegisterTrait duplicate member = %v", err)
	}

	s := NewSchema("Marker", nil)
	if err := ComposeMixins(s, name+":marker_"); err != nil {
		t.Fatal(err)
	}
	if !s.Has("marker_radius") || !s.Has("marker_units") {
		t.Errorf("Names = %v", s.Names())
	}
}
