package domain

import "fmt"

// Column is a board column. Columns are static configuration; users never create or reorder them.
type Column[K comparable] struct {
	ID    K      // Column key
	Label string // Display label
}

// Title returns the label, falling back to the key.
func (c Column[K]) Title() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprint(c.ID)
}

// ColumnsFromConfig converts configured columns into stage-keyed columns.
// An empty configuration yields the default stages.
func ColumnsFromConfig(cfgs []ColumnConfig) []Column[Stage] {
	if len(cfgs) == 0 {
		return DefaultStages()
	}
	cols := make([]Column[Stage], 0, len(cfgs))
	for _, c := range cfgs {
		cols = append(cols, Column[Stage]{ID: Stage(c.ID), Label: c.Label})
	}
	return cols
}
