package props_test

import (
	"fmt"

	"github.com/matzehuels/plotkit/pkg/props"
)

func ExampleComposeMixins() {
	s := props.NewSchema("Panel", nil)
	if err := props.ComposeMixins(s, "fill:background_fill_", "fill:border_fill_"); err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, name := range s.Names() {
		fmt.Println(name)
	}
	// Output:
	// background_fill_color
	// background_fill_alpha
	// border_fill_color
	// border_fill_alpha
}

func ExampleBuilder() {
	s, err := props.Class("Banner").
		Mixins("text:title_text_").
		Define("text", props.KindString, props.Lit("")).
		Override("title_text_font_size", props.Lit("16pt")).
		Build()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	size, _ := s.Default("title_text_font_size")
	fmt.Println(s.Class(), s.Len(), size)
	// Output:
	// Banner 9 16pt
}

func ExampleComposeMixins_collision() {
	s := props.NewSchema("Clash", nil)
	err := props.ComposeMixins(s, "fill:border_", "line:border_")
	fmt.Println(err)
	// Output:
	// SCHEMA_COLLISION: Clash: mixins fill:border_ and line:border_ both declare "border_color"
}
