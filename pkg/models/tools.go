package models

import (
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Dimensions a pan or zoom tool acts on.
var Dimensions = []string{"width", "height", "both"}

var (
	toolSchema = props.MustRegister(props.Class("Tool").
			Extends(ModelSchema).
			Define("description", props.KindString, props.Nil))

	_ = props.MustRegister(props.Class("PanTool").
		Extends(toolSchema).
		Enum("dimensions", props.Lit("both"), Dimensions...))

	_ = props.MustRegister(props.Class("WheelZoomTool").
		Extends(toolSchema).
		Enum("dimensions", props.Lit("both"), Dimensions...).
		Define("maintain_focus", props.KindBool, props.Lit(true)).
		Define("zoom_on_axis", props.KindBool, props.Lit(true)))

	_ = props.MustRegister(props.Class("BoxZoomTool").
		Extends(toolSchema).
		Enum("dimensions", props.Lit("both"), Dimensions...).
		Define("match_aspect", props.KindBool, props.Lit(false)))

	_ = props.MustRegister(props.Class("BoxSelectTool").
		Extends(toolSchema).
		Enum("dimensions", props.Lit("both"), Dimensions...).
		Define("select_every_mousemove", props.KindBool, props.Lit(false)))

	_ = props.MustRegister(props.Class("HoverTool").
		Extends(toolSchema).
		Define("tooltips", props.KindList, props.Fn(func() any {
			return []any{[2]string{"index", "$index"}, [2]string{"data (x, y)", "($x, $y)"}}
		})).
		Enum("mode", props.Lit("mouse"), "mouse", "hline", "vline"))

	_ = props.MustRegister(props.Class("TapTool").Extends(toolSchema))
	_ = props.MustRegister(props.Class("CrosshairTool").Extends(toolSchema).
		Enum("dimensions", props.Lit("both"), Dimensions...))
	_ = props.MustRegister(props.Class("LassoSelectTool").Extends(toolSchema))
	_ = props.MustRegister(props.Class("SaveTool").Extends(toolSchema))
	_ = props.MustRegister(props.Class("ResetTool").Extends(toolSchema))
)

// toolAliases maps the short names used in blueprints to tool classes.
var toolAliases = map[string]string{
	"pan":          "PanTool",
	"wheel_zoom":   "WheelZoomTool",
	"box_zoom":     "BoxZoomTool",
	"box_select":   "BoxSelectTool",
	"hover":        "HoverTool",
	"tap":          "TapTool",
	"crosshair":    "CrosshairTool",
	"lasso_select": "LassoSelectTool",
	"save":         "SaveTool",
	"reset":        "ResetTool",
}

// Tool is one toolbar tool. The class selects its behavior.
type Tool struct{ model.Model }

// NewTool creates a tool of a registered Tool subclass.
func NewTool(class string, attrs model.Attrs) (*Tool, error) {
	s, err := schemaFor(class, "Tool")
	if err != nil {
		return nil, err
	}
	return build(&Tool{}, s, attrs)
}

// ToolByName creates a tool from its short name ("pan", "wheel_zoom", ...)
// or its class name.
func ToolByName(name string) (*Tool, error) {
	if class, ok := toolAliases[name]; ok {
		return NewTool(class, nil)
	}
	return NewTool(name, nil)
}

// ToolNames returns the short tool names in sorted order.
func ToolNames() []string {
	names := make([]string, 0, len(toolAliases))
	for k := range toolAliases {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// ToolsByName resolves each short name with ToolByName.
func ToolsByName(names ...string) ([]*Tool, error) {
	tools := make([]*Tool, 0, len(names))
	for _, n := range names {
		t, err := ToolByName(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "tool %q", n)
		}
		tools = append(tools, t)
	}
	return tools, nil
}
