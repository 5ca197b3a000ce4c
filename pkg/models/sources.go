package models

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

var (
	dataSourceSchema = props.MustRegister(props.Class("DataSource").
				Extends(ModelSchema).
				Define("selected", props.KindDict, props.EmptyDict()))

	columnDataSourceSchema = props.MustRegister(props.Class("ColumnDataSource").
				Extends(dataSourceSchema).
				Define("data", props.KindDict, props.Fn(func() any { return map[string][]any{} })))
)

// ColumnDataSource maps column names to equal-length value sequences.
type ColumnDataSource struct{ model.Model }

// NewColumnDataSource creates a source. data may be nil.
// All columns must have the same length.
func NewColumnDataSource(data map[string][]any) (*ColumnDataSource, error) {
	attrs := model.Attrs{}
	if data != nil {
		if err := checkColumns(data); err != nil {
			return nil, err
		}
		cp := make(map[string][]any, len(data))
		for k, v := range data {
			cp[k] = slices.Clone(v)
		}
		attrs["data"] = cp
	}
	return build(&ColumnDataSource{}, columnDataSourceSchema, attrs)
}

// Data returns the column table. Treat it as read-only.
func (s *ColumnDataSource) Data() map[string][]any {
	d, _ := model.Value[map[string][]any](s, "data")
	return d
}

// ColumnNames returns the column names in sorted order.
func (s *ColumnDataSource) ColumnNames() []string {
	return slices.Sorted(maps.Keys(s.Data()))
}

// Len returns the number of rows.
func (s *ColumnDataSource) Len() int {
	for _, col := range s.Data() {
		return len(col)
	}
	return 0
}

// AddColumn adds or replaces a column. The table is replaced with a copy so
// the write notifies listeners of "data".
func (s *ColumnDataSource) AddColumn(name string, values []any) error {
	next := maps.Clone(s.Data())
	if next == nil {
		next = map[string][]any{}
	}
	next[name] = slices.Clone(values)
	if err := checkColumns(next); err != nil {
		return err
	}
	return s.Set("data", next)
}

func checkColumns(data map[string][]any) error {
	want := -1
	for _, name := range slices.Sorted(maps.Keys(data)) {
		n := len(data[name])
		if want == -1 {
			want = n
			continue
		}
		if n != want {
			return errors.New(errors.ErrCodeInvalidValue,
				"column %q has %d rows, expected %d", name, n, want)
		}
	}
	return nil
}
