// Package props implements the attribute schema system every plotkit entity
// is declared with.
//
// A [Schema] is an ordered table of [Property] declarations for one entity
// class. Each property has a [Kind] (the value shape it accepts) and a
// [Default], which is either a shared immutable [Literal] or a [Factory]
// invoked once per constructed instance.
//
// # Declaring a Class
//
// Classes are declared once, at package initialisation, with a [Builder]:
//
//	var plotSchema = props.MustRegister(
//	    props.Class("Plot").
//	        Extends(layoutDOM).
//	        Mixins("line:outline_line_", "fill:background_fill_", "fill:border_fill_").
//	        Define("plot_width", props.KindInt, props.Lit(600)).
//	        Define("renderers", props.KindList, props.Fn(func() any { return []any{} })).
//	        Override("outline_line_color", props.Lit("#e5e5e5")),
//	)
//
// Errors are collected in call order and returned by [Builder.Build];
// [MustRegister] panics on them, which makes a broken class declaration fail
// at program start rather than at first use.
//
// # Traits
//
// A [Trait] is a named bundle of unprefixed declarations ("line", "fill",
// "text", "hatch"). A mixin spec "<trait>:<prefix>" expands the bundle with
// the prefix prepended to every name. Two expansions that land on the same
// name are rejected with SCHEMA_COLLISION; the later one never silently
// replaces the earlier. Defaults of composed properties are adjusted with
// [Builder.Override].
//
// # Concurrency
//
// Schemas are immutable once built. The class and trait registries are safe
// for concurrent use.
package props
