// Package usecase contains application use cases.
package usecase

import (
	"strings"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
)

// JobBoard is the stage-keyed board the use cases operate on.
type JobBoard = board.Store[domain.Stage]

// resolveColumn maps user input to a column key, matching IDs and labels case-insensitively.
// Unmatched input is returned unchanged so the store reports it as an invalid column.
func resolveColumn(b *JobBoard, name string) domain.Stage {
	name = strings.TrimSpace(name)
	for _, c := range b.Columns() {
		if strings.EqualFold(string(c.ID), name) || strings.EqualFold(c.Label, name) {
			return c.ID
		}
	}
	return domain.Stage(name)
}
