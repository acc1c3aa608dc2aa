package domain

// FieldDef describes one editable text field of an item.
type FieldDef struct {
	Name      string `toml:"name"`
	Label     string `toml:"label"`
	Required  bool   `toml:"required"`
	Multiline bool   `toml:"multiline"`
}

// Title returns the label, falling back to the name.
func (f FieldDef) Title() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Schema is the set of editable fields an item carries.
type Schema struct {
	Fields []FieldDef
}

// DefaultJobSchema returns the fields of a service job.
func DefaultJobSchema() Schema {
	return Schema{Fields: []FieldDef{
		{Name: FieldClient, Label: "Client", Required: true},
		{Name: FieldDescription, Label: "Description", Required: true, Multiline: true},
		{Name: FieldTeam, Label: "Team"},
		{Name: FieldCallTime, Label: "Call Time"},
	}}
}

// KanbanSchema returns the single-field schema of the generic kanban board.
func KanbanSchema() Schema {
	return Schema{Fields: []FieldDef{
		{Name: FieldContent, Label: "Content", Required: true},
	}}
}

// Lookup returns the definition of a named field.
func (s Schema) Lookup(name string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Has returns true if the schema defines the named field.
func (s Schema) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Required returns the names of required fields in schema order.
func (s Schema) Required() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// Names returns all field names in schema order.
func (s Schema) Names() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Name)
	}
	return out
}

// SchemaFromConfig builds a schema from configured fields.
// An empty configuration yields the default job schema.
func SchemaFromConfig(fields []FieldDef) Schema {
	if len(fields) == 0 {
		return DefaultJobSchema()
	}
	return Schema{Fields: append([]FieldDef(nil), fields...)}
}
