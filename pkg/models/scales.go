package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

var (
	scaleSchema = props.MustRegister(props.Class("Scale").
			Extends(ModelSchema))

	_ = props.MustRegister(props.Class("LinearScale").Extends(scaleSchema))
	_ = props.MustRegister(props.Class("LogScale").Extends(scaleSchema))
	_ = props.MustRegister(props.Class("CategoricalScale").Extends(scaleSchema))
)

// Scale maps data space to screen space along one dimension.
// The mapping itself belongs to the renderer; this entity only records the
// choice.
type Scale struct{ model.Model }

// NewScale creates a scale of the given class (LinearScale, LogScale,
// CategoricalScale, or a registered subclass of Scale).
func NewScale(class string, attrs model.Attrs) (*Scale, error) {
	s, err := schemaFor(class, "Scale")
	if err != nil {
		return nil, err
	}
	return build(&Scale{}, s, attrs)
}

// NewLinearScale creates a LinearScale.
func NewLinearScale() (*Scale, error) {
	return NewScale("LinearScale", nil)
}
