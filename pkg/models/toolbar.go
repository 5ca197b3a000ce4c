package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

var (
	toolbarBaseSchema = props.MustRegister(props.Class("ToolbarBase").
				Extends(ModelSchema).
				Enum("logo", props.Lit("normal"), "normal", "grey").
				Define("tools", props.KindList, props.Fn(func() any { return []*Tool{} })))

	toolbarSchema = props.MustRegister(props.Class("Toolbar").
			Extends(toolbarBaseSchema).
			Define("active_drag", props.KindAny, props.Lit("auto")).
			Define("active_inspect", props.KindAny, props.Lit("auto")).
			Define("active_scroll", props.KindAny, props.Lit("auto")).
			Define("active_tap", props.KindAny, props.Lit("auto")).
			Define("autohide", props.KindBool, props.Lit(false)))

	proxyToolbarSchema = props.MustRegister(props.Class("ProxyToolbar").
				Extends(toolbarBaseSchema))
)

// Toolbar holds the tools of one plot, or of a whole grid when created as a
// ProxyToolbar.
type Toolbar struct{ model.Model }

// NewToolbar creates a Toolbar.
func NewToolbar(attrs model.Attrs) (*Toolbar, error) {
	return build(&Toolbar{}, toolbarSchema, attrs)
}

// NewProxyToolbar creates a ProxyToolbar that fronts the tools of several plots.
func NewProxyToolbar(attrs model.Attrs) (*Toolbar, error) {
	return build(&Toolbar{}, proxyToolbarSchema, attrs)
}

// Tools returns the current tools sequence. The slice is shared with the
// toolbar; replace it with SetTools instead of writing into it.
func (t *Toolbar) Tools() []*Tool {
	return model.List[*Tool](t, "tools")
}

// SetTools replaces the tools sequence reactively.
func (t *Toolbar) SetTools(tools []*Tool) error {
	return t.Set("tools", tools)
}
