package board

import "github.com/bstc-oman/dispatch/internal/domain"

// DragState is the state of a Coordinator: DragIdle or Dragging.
//
// go-sumtype:decl DragState
type DragState interface {
	dragState()
}

// DragIdle means no card is being carried.
type DragIdle struct{}

func (DragIdle) dragState() {}

// Dragging carries a snapshot of the card picked up.
type Dragging[K comparable] struct {
	Item domain.Item[K]
}

func (Dragging[K]) dragState() {}

// editLocker reports whether an item has an open inline edit.
type editLocker interface {
	IsEditing(itemID string) bool
}

// Coordinator tracks the card being dragged and turns a drop into a store move.
type Coordinator[K comparable] struct {
	store *Store[K]
	edits editLocker
	state DragState
}

// NewCoordinator creates an idle coordinator. edits may be nil.
func NewCoordinator[K comparable](store *Store[K], edits editLocker) *Coordinator[K] {
	return &Coordinator[K]{store: store, edits: edits, state: DragIdle{}}
}

// State returns the current state.
func (c *Coordinator[K]) State() DragState {
	return c.state
}

// Dragging returns the carried item, if any.
func (c *Coordinator[K]) Dragging() (domain.Item[K], bool) {
	d, ok := c.state.(Dragging[K])
	return d.Item, ok
}

// BeginDrag picks up item, replacing any stale drag.
// An item with an open inline edit cannot be picked up.
func (c *Coordinator[K]) BeginDrag(item domain.Item[K]) error {
	if c.edits != nil && c.edits.IsEditing(item.ID) {
		return domain.ErrItemBeingEdited
	}
	c.state = Dragging[K]{Item: item.Clone()}
	return nil
}

// DropOn moves the carried item to target and returns to idle, whatever the outcome.
func (c *Coordinator[K]) DropOn(target K) error {
	d, ok := c.state.(Dragging[K])
	if !ok {
		return domain.ErrNotDragging
	}
	c.state = DragIdle{}
	return c.store.MoveItem(d.Item.ID, target)
}

// Cancel drops the carried item nowhere. The store is not touched.
func (c *Coordinator[K]) Cancel() {
	c.state = DragIdle{}
}
