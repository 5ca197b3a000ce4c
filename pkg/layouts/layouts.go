package layouts

import (
	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/observability"
)

type options struct {
	sizingMode string
}

// Option configures Row, Column and Layout.
type Option func(*options)

// WithSizingMode sets the sizing_mode of the created container, and for
// Layout of every leaf.
func WithSizingMode(mode string) Option {
	return func(o *options) { o.sizingMode = mode }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sizingValue maps the empty mode to an unset attribute.
func sizingValue(mode string) any {
	if mode == "" {
		return nil
	}
	return mode
}

// Row arranges children horizontally.
func Row(children []models.LayoutDOM, opts ...Option) (*models.Box, error) {
	return box("row", children, opts)
}

// Column arranges children vertically.
func Column(children []models.LayoutDOM, opts ...Option) (*models.Box, error) {
	return box("column", children, opts)
}

func box(kind string, children []models.LayoutDOM, opts []Option) (*models.Box, error) {
	o := collect(opts)
	for i, c := range children {
		if c == nil {
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"only layout entities can be inserted into a %s, item %d is nil", kind, i)
		}
	}
	attrs := model.Attrs{"sizing_mode": sizingValue(o.sizingMode)}
	var (
		b   *models.Box
		err error
	)
	if kind == "row" {
		b, err = models.NewRow(children, attrs)
	} else {
		b, err = models.NewColumn(children, attrs)
	}
	if err != nil {
		return nil, err
	}
	observability.Layouts().OnLayoutBuilt(kind, len(children))
	return b, nil
}

// Item is one node of a nested layout: either a leaf entity or a nested
// list.
type Item struct {
	leaf   models.LayoutDOM
	nested []Item
	isList bool
}

// Leaf wraps a layout entity.
func Leaf(l models.LayoutDOM) Item { return Item{leaf: l} }

// Nest groups items into a nested list.
func Nest(items ...Item) Item { return Item{nested: items, isList: true} }

// Layout builds a column of rows from rows and applies the sizing mode to
// every child.
func Layout(rows [][]models.LayoutDOM, opts ...Option) (*models.Box, error) {
	items := make([]Item, len(rows))
	for i, row := range rows {
		leaves := make([]Item, len(row))
		for j, l := range row {
			leaves[j] = Leaf(l)
		}
		items[i] = Nest(leaves...)
	}
	return LayoutTree(items, opts...)
}

// LayoutTree builds a layout from arbitrarily nested items. The top level is
// a column, nested lists alternate between row and column by depth.
// Every leaf gets the sizing mode, or has it cleared when none is given.
func LayoutTree(items []Item, opts ...Option) (*models.Box, error) {
	return createGrid(items, collect(opts).sizingMode, 0)
}

func createGrid(items []Item, mode string, depth int) (*models.Box, error) {
	children := make([]models.LayoutDOM, 0, len(items))
	for i, it := range items {
		if it.isList {
			sub, err := createGrid(it.nested, mode, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, sub)
			continue
		}
		if it.leaf == nil {
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"only layout entities can be inserted into a layout, item %d at depth %d is nil", i, depth)
		}
		if err := it.leaf.Base().Set("sizing_mode", sizingValue(mode)); err != nil {
			return nil, err
		}
		children = append(children, it.leaf)
	}
	if depth%2 == 0 {
		return Column(children, WithSizingMode(mode))
	}
	return Row(children, WithSizingMode(mode))
}
