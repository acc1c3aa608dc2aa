package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bstc-oman/dispatch/internal/domain"
	"gopkg.in/yaml.v3"
)

// Op names a replay step.
type Op string

// Replay operations.
const (
	OpAdd        Op = "add"
	OpEdit       Op = "edit"
	OpMove       Op = "move"
	OpRemove     Op = "remove"
	OpDrag       Op = "drag"
	OpDrop       Op = "drop"
	OpCancelDrag Op = "cancel-drag"
	OpStartEdit  Op = "start-edit"
	OpDraft      Op = "draft"
	OpCommit     Op = "commit"
	OpCancelEdit Op = "cancel-edit"
)

// AllOps returns every replay operation.
func AllOps() []Op {
	return []Op{
		OpAdd, OpEdit, OpMove, OpRemove,
		OpDrag, OpDrop, OpCancelDrag,
		OpStartEdit, OpDraft, OpCommit, OpCancelEdit,
	}
}

// Step is one scripted board operation.
// Fields are ordered to minimize memory padding.
type Step struct {
	Fields map[string]string `yaml:"fields,omitempty"` // add
	Value  *string           `yaml:"value,omitempty"`  // edit, draft
	Op     Op                `yaml:"op"`
	ID     string            `yaml:"id,omitempty"`     // edit, move, remove, drag, start-edit
	Column string            `yaml:"column,omitempty"` // add (empty = active column)
	To     string            `yaml:"to,omitempty"`     // move, drop
	Field  string            `yaml:"field,omitempty"`  // edit, start-edit
}

// Script is a sequence of steps replayed against a board.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// LoadScript reads and validates a replay script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := DecodeScript(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return s, nil
}

// DecodeScript reads and validates a replay script from YAML.
func DecodeScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names a known operation and carries its arguments.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if !slices.Contains(AllOps(), st.Op) {
			return fmt.Errorf("step %d: %w: %q", i+1, domain.ErrUnknownOperation, st.Op)
		}
		if missing := st.missing(); missing != "" {
			return fmt.Errorf("step %d (%s): missing %s", i+1, st.Op, missing)
		}
	}
	return nil
}

func (st Step) missing() string {
	switch st.Op {
	case OpEdit:
		switch {
		case st.ID == "":
			return "id"
		case st.Field == "":
			return "field"
		case st.Value == nil:
			return "value"
		}
	case OpMove:
		if st.ID == "" {
			return "id"
		}
		if st.To == "" {
			return "to"
		}
	case OpRemove, OpDrag:
		if st.ID == "" {
			return "id"
		}
	case OpDrop:
		if st.To == "" {
			return "to"
		}
	case OpStartEdit:
		if st.ID == "" {
			return "id"
		}
		if st.Field == "" {
			return "field"
		}
	case OpDraft:
		if st.Value == nil {
			return "value"
		}
	}
	return ""
}
