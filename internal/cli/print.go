package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
)

// printBoard writes the board view as text, one block per column.
// The first schema field is the card headline; other fields are labelled.
func printBoard[K comparable](w io.Writer, v board.View[K], schema domain.Schema) {
	for i, col := range v.Columns {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s (%d)\n", col.Column.Title(), col.Count)
		if col.Empty() {
			_, _ = fmt.Fprintln(w, "  No jobs in this status")
			continue
		}
		for _, it := range col.Items {
			printItem(w, it, schema)
		}
	}
	_, _ = fmt.Fprintf(w, "\nTotal: %d\n", v.Total)
}

func printItem[K comparable](w io.Writer, it domain.Item[K], schema domain.Schema) {
	headline := ""
	if len(schema.Fields) > 0 {
		headline = it.Field(schema.Fields[0].Name)
	}
	_, _ = fmt.Fprintf(w, "  #%-4s %s\n", it.ID, headline)
	for _, f := range schema.Fields[min(1, len(schema.Fields)):] {
		val := strings.TrimSpace(it.Field(f.Name))
		if val == "" {
			continue
		}
		if f.Multiline {
			val = strings.ReplaceAll(val, "\n", "\n         ")
		}
		_, _ = fmt.Fprintf(w, "        %s: %s\n", f.Title(), val)
	}
}

// boardJSON is the JSON shape of a board view.
type boardJSON struct {
	Columns []columnJSON `json:"columns"`
	Total   int          `json:"total"`
}

type columnJSON struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Jobs  []itemJSON `json:"jobs"`
	Count int        `json:"count"`
}

type itemJSON struct {
	Fields  map[string]string `json:"fields"`
	ID      string            `json:"id"`
	Column  string            `json:"column"`
	Created string            `json:"created,omitempty"`
}

func toBoardJSON[K comparable](v board.View[K]) boardJSON {
	out := boardJSON{Columns: make([]columnJSON, 0, len(v.Columns)), Total: v.Total}
	for _, col := range v.Columns {
		cj := columnJSON{
			ID:    fmt.Sprint(col.Column.ID),
			Label: col.Column.Title(),
			Count: col.Count,
			Jobs:  make([]itemJSON, 0, len(col.Items)),
		}
		for _, it := range col.Items {
			cj.Jobs = append(cj.Jobs, toItemJSON(it))
		}
		out.Columns = append(out.Columns, cj)
	}
	return out
}

func toItemJSON[K comparable](it domain.Item[K]) itemJSON {
	ij := itemJSON{ID: it.ID, Column: fmt.Sprint(it.ColumnID), Fields: it.Fields}
	if !it.Created.IsZero() {
		ij.Created = it.Created.Format(time.RFC3339)
	}
	return ij
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
