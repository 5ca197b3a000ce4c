package plot

import (
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
)

// Place names a layout slot.
type Place int

const (
	Above Place = iota
	Below
	Left
	Right
	Center
)

var placeNames = [...]string{"above", "below", "left", "right", "center"}

// removeOrder is the order RemoveLayout scans slots in.
var removeOrder = [...]Place{Left, Right, Above, Below, Center}

// String returns the slot attribute name.
func (pl Place) String() string {
	if pl < 0 || int(pl) >= len(placeNames) {
		return "unknown"
	}
	return placeNames[pl]
}

// ParsePlace converts a slot name to a Place.
func ParsePlace(s string) (Place, error) {
	if i := slices.Index(placeNames[:], s); i >= 0 {
		return Place(i), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSlot, "unknown layout slot %q, expected one of %v", s, placeNames)
}

// AddLayout appends item to the slot at place. Grids are rejected on the
// four sides and axes in the center.
func (p *Plot) AddLayout(item models.Decoration, place Place) error {
	if isNil(item) {
		return errors.New(errors.ErrCodeInvalidSlot, "cannot place a nil decoration")
	}
	switch place {
	case Center:
		c, ok := item.(models.CenterDecoration)
		if !ok {
			return errors.New(errors.ErrCodeInvalidSlot, "%s cannot be placed in the center slot", item.Class())
		}
		return p.Set(place.String(), append(slices.Clone(p.Center()), c))
	case Above, Below, Left, Right:
		s, ok := item.(models.SideDecoration)
		if !ok {
			return errors.New(errors.ErrCodeInvalidSlot, "%s cannot be placed in the %s slot", item.Class(), place)
		}
		return p.Set(place.String(), append(slices.Clone(p.side(place)), s))
	default:
		return errors.New(errors.ErrCodeInvalidSlot, "unknown layout slot %d", int(place))
	}
}

// RemoveLayout removes every occurrence of item from every slot. Slots that
// did not hold item are left untouched; an absent item is a no-op.
func (p *Plot) RemoveLayout(item models.Decoration) error {
	if isNil(item) {
		return nil
	}
	for _, place := range removeOrder {
		var (
			next    any
			removed int
		)
		if place == Center {
			next, removed = without(p.Center(), item)
		} else {
			next, removed = without(p.side(place), item)
		}
		if removed == 0 {
			continue
		}
		if err := p.Set(place.String(), next); err != nil {
			return err
		}
	}
	return nil
}

func without[T models.Decoration](xs []T, item models.Decoration) ([]T, int) {
	kept := make([]T, 0, len(xs))
	for _, x := range xs {
		if models.Decoration(x) == item {
			continue
		}
		kept = append(kept, x)
	}
	return kept, len(xs) - len(kept)
}

// ===== Slot accessors =====

// Above returns the decorations above the plot area.
func (p *Plot) Above() []models.SideDecoration { return p.side(Above) }

// Below returns the decorations below the plot area.
func (p *Plot) Below() []models.SideDecoration { return p.side(Below) }

// Left returns the decorations left of the plot area.
func (p *Plot) Left() []models.SideDecoration { return p.side(Left) }

// Right returns the decorations right of the plot area.
func (p *Plot) Right() []models.SideDecoration { return p.side(Right) }

// Center returns the decorations drawn inside the plot area.
func (p *Plot) Center() []models.CenterDecoration {
	return model.List[models.CenterDecoration](p, Center.String())
}

func (p *Plot) side(place Place) []models.SideDecoration {
	return model.List[models.SideDecoration](p, place.String())
}

// Slot returns the contents of any slot as plain decorations.
func (p *Plot) Slot(place Place) []models.Decoration {
	var out []models.Decoration
	if place == Center {
		for _, c := range p.Center() {
			out = append(out, c)
		}
		return out
	}
	if place < Above || place > Right {
		return nil
	}
	for _, s := range p.side(place) {
		out = append(out, s)
	}
	return out
}

// XAxes returns the axes placed below and above the plot area.
func (p *Plot) XAxes() []*models.Axis {
	return axesIn(slices.Concat(p.Below(), p.Above()))
}

// YAxes returns the axes placed left and right of the plot area.
func (p *Plot) YAxes() []*models.Axis {
	return axesIn(slices.Concat(p.Left(), p.Right()))
}

func axesIn(items []models.SideDecoration) []*models.Axis {
	var out []*models.Axis
	for _, it := range items {
		if a, ok := it.(*models.Axis); ok {
			out = append(out, a)
		}
	}
	return out
}

// Grids returns the grids in the center slot.
func (p *Plot) Grids() []*models.Grid {
	var out []*models.Grid
	for _, it := range p.Center() {
		if g, ok := it.(*models.Grid); ok {
			out = append(out, g)
		}
	}
	return out
}

// Legends returns the legends in any slot, side slots first.
func (p *Plot) Legends() []*models.Annotation {
	var out []*models.Annotation
	for _, place := range [...]Place{Above, Below, Left, Right, Center} {
		for _, it := range p.Slot(place) {
			if a, ok := it.(*models.Annotation); ok && a.Schema().IsA("Legend") && !slices.Contains(out, a) {
				out = append(out, a)
			}
		}
	}
	return out
}
