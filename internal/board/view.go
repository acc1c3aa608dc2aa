package board

import "github.com/bstc-oman/dispatch/internal/domain"

// ColumnView is one column of the derived board view.
type ColumnView[K comparable] struct {
	Column domain.Column[K]
	Items  []domain.Item[K]
	Count  int
}

// Empty returns true if the column holds no items.
func (c ColumnView[K]) Empty() bool {
	return c.Count == 0
}

// View is the board projected onto its columns, in column order.
type View[K comparable] struct {
	Columns []ColumnView[K]
	Total   int
}

// Column returns the view of a single column.
func (v View[K]) Column(id K) (ColumnView[K], bool) {
	for _, c := range v.Columns {
		if c.Column.ID == id {
			return c, true
		}
	}
	return ColumnView[K]{}, false
}

// Project partitions items by column. It is a pure function: the result shares no state with
// its inputs and nothing is cached between calls. Items whose column is not in columns are
// left out of every column but still counted in Total.
func Project[K comparable](columns []domain.Column[K], items []domain.Item[K]) View[K] {
	index := make(map[K]int, len(columns))
	out := View[K]{
		Columns: make([]ColumnView[K], len(columns)),
		Total:   len(items),
	}
	for i, c := range columns {
		index[c.ID] = i
		out.Columns[i] = ColumnView[K]{Column: c}
	}
	for _, it := range items {
		i, ok := index[it.ColumnID]
		if !ok {
			continue
		}
		out.Columns[i].Items = append(out.Columns[i].Items, it.Clone())
		out.Columns[i].Count++
	}
	return out
}
