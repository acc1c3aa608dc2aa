package board

import (
	"errors"
	"strings"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// EditState is the state of an EditSession: EditInactive or Editing.
//
// go-sumtype:decl EditState
type EditState interface {
	editState()
}

// EditInactive means no field is being edited.
type EditInactive struct{}

func (EditInactive) editState() {}

// Editing locates the field being edited and holds the uncommitted text.
type Editing struct {
	ItemID string
	Field  string
	Draft  string
}

func (Editing) editState() {}

// EditSession tracks the single field being edited inline and commits it into a Store.
type EditSession[K comparable] struct {
	store *Store[K]
	state EditState
}

// NewEditSession creates an inactive session over store.
func NewEditSession[K comparable](store *Store[K]) *EditSession[K] {
	return &EditSession[K]{store: store, state: EditInactive{}}
}

// State returns the current state.
func (e *EditSession[K]) State() EditState {
	return e.state
}

// Current returns the active edit, if any.
func (e *EditSession[K]) Current() (Editing, bool) {
	ed, ok := e.state.(Editing)
	return ed, ok
}

// IsEditing returns true if a field of the given item is being edited.
func (e *EditSession[K]) IsEditing(itemID string) bool {
	ed, ok := e.state.(Editing)
	return ok && ed.ItemID == itemID
}

// StartEdit begins editing field of itemID with current as the draft.
// An edit already in progress is discarded.
func (e *EditSession[K]) StartEdit(itemID, field, current string) {
	e.state = Editing{ItemID: itemID, Field: field, Draft: current}
}

// UpdateDraft replaces the draft text. The store is not touched.
func (e *EditSession[K]) UpdateDraft(text string) error {
	ed, ok := e.state.(Editing)
	if !ok {
		return domain.ErrNotEditing
	}
	ed.Draft = text
	e.state = ed
	return nil
}

// Commit writes the draft into the store.
// A blank draft is rejected with a ValidationError and the session stays open. Any other
// store rejection (the item was removed, the field is unknown) ends the session.
func (e *EditSession[K]) Commit() error {
	ed, ok := e.state.(Editing)
	if !ok {
		return domain.ErrNotEditing
	}
	if strings.TrimSpace(ed.Draft) == "" {
		return &domain.ValidationError{Field: ed.Field}
	}
	if err := e.store.EditField(ed.ItemID, ed.Field, ed.Draft); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			e.state = EditInactive{}
		}
		return err
	}
	e.state = EditInactive{}
	return nil
}

// Cancel discards the draft.
func (e *EditSession[K]) Cancel() {
	e.state = EditInactive{}
}
