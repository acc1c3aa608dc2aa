// Package board implements the in-memory job board: the store, the drag/drop coordinator,
// the inline edit session and the derived per-column view.
//
// Nothing in this package is safe for concurrent use. All calls are expected to come from a
// single event loop, so every operation runs to completion before the next one starts.
package board

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// EventKind identifies the mutation a store event reports.
type EventKind int

const (
	EventAdded EventKind = iota
	EventRemoved
	EventEdited
	EventMoved
	EventImported
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventEdited:
		return "edited"
	case EventMoved:
		return "moved"
	case EventImported:
		return "imported"
	default:
		return "unknown"
	}
}

// Event is published after every mutating call, successful or not.
// Fields are ordered to minimize memory padding.
type Event[K comparable] struct {
	Err    error  // Non-nil when the operation was rejected
	ItemID string // Affected item (empty for imports)
	Field  string // Edited field (EventEdited only)
	From   K      // Previous column (EventMoved only)
	To     K      // Target or current column
	Kind   EventKind
	Noop   bool // Operation accepted but changed nothing
}

// Option configures a Store.
type Option[K comparable] func(*Store[K])

// WithIDGenerator sets the generator used for new item IDs.
func WithIDGenerator[K comparable](g domain.IDGenerator) Option[K] {
	return func(s *Store[K]) { s.ids = g }
}

// WithClock sets the clock used to stamp new items.
func WithClock[K comparable](c domain.Clock) Option[K] {
	return func(s *Store[K]) { s.clock = c }
}

// WithActiveColumn sets the column AddItem uses when the caller names none.
// It must be one of the store's columns.
func WithActiveColumn[K comparable](col K) Option[K] {
	return func(s *Store[K]) { s.active = col }
}

type listener[K comparable] struct {
	fn func(Event[K])
	id int
}

// Store owns the board's items and its column taxonomy.
type Store[K comparable] struct {
	ids       domain.IDGenerator
	clock     domain.Clock
	listeners []listener[K]
	columns   []domain.Column[K]
	items     []domain.Item[K] // insertion order; order within a column is the order here
	schema    domain.Schema
	active    K
	nextSub   int
}

// NewStore creates an empty store over the given ordered columns.
// The first column is the active column unless WithActiveColumn says otherwise.
func NewStore[K comparable](columns []domain.Column[K], schema domain.Schema, opts ...Option[K]) (*Store[K], error) {
	if len(columns) == 0 {
		return nil, domain.ErrNoColumns
	}
	seen := make(map[K]bool, len(columns))
	for _, c := range columns {
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: %v", domain.ErrDuplicateColumn, c.ID)
		}
		seen[c.ID] = true
	}

	s := &Store[K]{
		columns: slices.Clone(columns),
		schema:  schema,
		active:  columns[0].ID,
		clock:   domain.RealClock{},
		ids:     &counterIDs{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.hasColumn(s.active) {
		return nil, invalidColumn(s.active)
	}
	return s, nil
}

// Columns returns the store's columns in board order.
func (s *Store[K]) Columns() []domain.Column[K] {
	return slices.Clone(s.columns)
}

// Schema returns the item schema.
func (s *Store[K]) Schema() domain.Schema {
	return s.schema
}

// ActiveColumn returns the column AddItem defaults to.
func (s *Store[K]) ActiveColumn() K {
	return s.active
}

// SetActiveColumn changes the default column for AddItem.
func (s *Store[K]) SetActiveColumn(col K) error {
	if !s.hasColumn(col) {
		return invalidColumn(col)
	}
	s.active = col
	return nil
}

// Subscribe registers fn to receive an event after every mutating call.
// The returned function removes the subscription.
func (s *Store[K]) Subscribe(fn func(Event[K])) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, listener[K]{id: id, fn: fn})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener[K]) bool { return l.id == id })
	}
}

// AddItem validates fields and inserts a new item into column, or into the active column
// when column is nil. Unset optional fields are stored as empty strings.
func (s *Store[K]) AddItem(column *K, fields map[string]string) (domain.Item[K], error) {
	col := s.active
	if column != nil {
		col = *column
	}

	item, err := s.newItem(col, fields)
	if err != nil {
		s.publish(Event[K]{Kind: EventAdded, To: col, Err: err})
		return domain.Item[K]{}, err
	}

	s.items = append(s.items, item)
	s.publish(Event[K]{Kind: EventAdded, ItemID: item.ID, To: col})
	return item.Clone(), nil
}

func (s *Store[K]) newItem(col K, fields map[string]string) (domain.Item[K], error) {
	if !s.hasColumn(col) {
		return domain.Item[K]{}, invalidColumn(col)
	}
	for name := range fields {
		if !s.schema.Has(name) {
			return domain.Item[K]{}, &domain.InvalidFieldError{Field: name}
		}
	}
	for _, name := range s.schema.Required() {
		if strings.TrimSpace(fields[name]) == "" {
			return domain.Item[K]{}, &domain.ValidationError{Field: name}
		}
	}

	values := make(map[string]string, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		values[f.Name] = fields[f.Name]
	}
	id := s.ids.NewID()
	for attempt := 1; s.index(id) >= 0; attempt++ {
		if attempt >= maxIDAttempts {
			return domain.Item[K]{}, fmt.Errorf("%w: %s", domain.ErrDuplicateItemID, id)
		}
		id = s.ids.NewID()
	}
	return domain.Item[K]{
		ID:       id,
		ColumnID: col,
		Fields:   values,
		Created:  s.clock.Now(),
	}, nil
}

// RemoveItem deletes the item with the given ID. Removing an absent ID is a no-op.
func (s *Store[K]) RemoveItem(id string) {
	i := s.index(id)
	if i < 0 {
		s.publish(Event[K]{Kind: EventRemoved, ItemID: id, Noop: true})
		return
	}
	col := s.items[i].ColumnID
	s.items = slices.Delete(s.items, i, i+1)
	s.publish(Event[K]{Kind: EventRemoved, ItemID: id, To: col})
}

// EditField replaces one field of an item in place. The item's ID and column are preserved.
func (s *Store[K]) EditField(id, field, value string) error {
	err := s.editField(id, field, value)
	s.publish(Event[K]{Kind: EventEdited, ItemID: id, Field: field, Err: err})
	return err
}

func (s *Store[K]) editField(id, field, value string) error {
	if !s.schema.Has(field) {
		return &domain.InvalidFieldError{Field: field}
	}
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Field: field}
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	s.items[i].Fields[field] = value
	return nil
}

// MoveItem reassigns an item to target. Moving an item onto its own column is a no-op.
// A moved item becomes the last item of the target column. Any column may move to any other.
func (s *Store[K]) MoveItem(id string, target K) error {
	if !s.hasColumn(target) {
		err := invalidColumn(target)
		s.publish(Event[K]{Kind: EventMoved, ItemID: id, To: target, Err: err})
		return err
	}
	i := s.index(id)
	if i < 0 {
		err := fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		s.publish(Event[K]{Kind: EventMoved, ItemID: id, To: target, Err: err})
		return err
	}

	item := s.items[i]
	if item.ColumnID == target {
		s.publish(Event[K]{Kind: EventMoved, ItemID: id, From: target, To: target, Noop: true})
		return nil
	}

	from := item.ColumnID
	item.ColumnID = target
	s.items = append(slices.Delete(s.items, i, i+1), item)
	s.publish(Event[K]{Kind: EventMoved, ItemID: id, From: from, To: target})
	return nil
}

// Import inserts items with preset IDs, such as seed data. Either all items are inserted
// or none are.
func (s *Store[K]) Import(items []domain.Item[K]) error {
	err := s.checkImport(items)
	if err == nil {
		for _, it := range items {
			it = it.Clone()
			for _, f := range s.schema.Fields {
				if _, ok := it.Fields[f.Name]; !ok {
					it.Fields[f.Name] = ""
				}
			}
			if it.Created.IsZero() {
				it.Created = s.clock.Now()
			}
			s.items = append(s.items, it)
		}
	}
	s.publish(Event[K]{Kind: EventImported, Err: err})
	return err
}

func (s *Store[K]) checkImport(items []domain.Item[K]) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			return &domain.ValidationError{Field: "id"}
		}
		if seen[it.ID] || s.index(it.ID) >= 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItemID, it.ID)
		}
		seen[it.ID] = true
		if !s.hasColumn(it.ColumnID) {
			return invalidColumn(it.ColumnID)
		}
		for name := range it.Fields {
			if !s.schema.Has(name) {
				return &domain.InvalidFieldError{Field: name}
			}
		}
		for _, name := range s.schema.Required() {
			if strings.TrimSpace(it.Fields[name]) == "" {
				return &domain.ValidationError{Field: name}
			}
		}
	}
	return nil
}

// Get returns a copy of the item with the given ID.
func (s *Store[K]) Get(id string) (domain.Item[K], bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Item[K]{}, false
	}
	return s.items[i].Clone(), true
}

// ItemsByColumn returns copies of the items in col, in insertion order.
func (s *Store[K]) ItemsByColumn(col K) []domain.Item[K] {
	var out []domain.Item[K]
	for _, it := range s.items {
		if it.ColumnID == col {
			out = append(out, it.Clone())
		}
	}
	return out
}

// Items returns copies of all items in insertion order.
func (s *Store[K]) Items() []domain.Item[K] {
	out := make([]domain.Item[K], 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Clone())
	}
	return out
}

// Count returns the number of items in col.
func (s *Store[K]) Count(col K) int {
	n := 0
	for _, it := range s.items {
		if it.ColumnID == col {
			n++
		}
	}
	return n
}

// Len returns the total number of items.
func (s *Store[K]) Len() int {
	return len(s.items)
}

// View projects the current items onto the columns.
func (s *Store[K]) View() View[K] {
	return Project(s.columns, s.items)
}

func (s *Store[K]) index(id string) int {
	return slices.IndexFunc(s.items, func(it domain.Item[K]) bool { return it.ID == id })
}

func (s *Store[K]) hasColumn(col K) bool {
	return slices.ContainsFunc(s.columns, func(c domain.Column[K]) bool { return c.ID == col })
}

func (s *Store[K]) publish(ev Event[K]) {
	for _, l := range s.listeners {
		l.fn(ev)
	}
}

func invalidColumn[K comparable](col K) error {
	return &domain.InvalidColumnError{Column: fmt.Sprint(col)}
}

// maxIDAttempts bounds how many IDs AddItem draws before giving up on a generator
// that keeps returning taken IDs.
const maxIDAttempts = 100

// counterIDs is the fallback generator: "1", "2", ...
type counterIDs struct {
	n int
}

func (c *counterIDs) NewID() string {
	c.n++
	return strconv.Itoa(c.n)
}
