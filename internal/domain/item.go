// Package domain contains core board entities, error kinds and ports.
package domain

import (
	"maps"
	"time"
)

// Well-known job field names.
const (
	FieldClient      = "client"
	FieldDescription = "description"
	FieldTeam        = "team"
	FieldCallTime    = "call_time"
	FieldContent     = "content"
)

// CallTimeLayout formats the call_time field.
const CallTimeLayout = "2006-01-02 03:04 PM"

// Item is a card on the board: a service job, or a plain task on a generic kanban board.
// Fields are ordered to minimize memory padding.
type Item[K comparable] struct {
	Created  time.Time         `json:"created" yaml:"created,omitempty"`
	Fields   map[string]string `json:"fields" yaml:"fields"`
	ID       string            `json:"id" yaml:"id"`
	ColumnID K                 `json:"column" yaml:"column"`
}

// Field returns the value of a named field ("" if unset).
func (it Item[K]) Field(name string) string {
	return it.Fields[name]
}

// Clone returns a copy that shares no mutable state with it.
func (it Item[K]) Clone() Item[K] {
	out := it
	out.Fields = maps.Clone(it.Fields)
	if out.Fields == nil {
		out.Fields = map[string]string{}
	}
	return out
}

// Job is an item on the stage-keyed dispatch board.
type Job = Item[Stage]
