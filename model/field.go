package model

// FieldType determines the filter and search semantics of a field.
type FieldType string

// Supported field types.
const (
	FieldString FieldType = "string"
	FieldEnum   FieldType = "enum"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
)

// FieldGroup names a presentation grouping of fields.
type FieldGroup string

// Field groups.
const (
	GroupEquipment      FieldGroup = "equipment"
	GroupVerification   FieldGroup = "verification"
	GroupResponsibility FieldGroup = "responsibility"
	GroupFinance        FieldGroup = "finance"
)

// Option is a label/value pair for an enum field. The value set of an enum
// field is closed: options enumerate every value the field may hold.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldDefinition describes one attribute of an equipment record. Key is
// stable across sessions and doubles as the persisted column identifier.
type FieldDefinition struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Group      FieldGroup `json:"group"`
	Type       FieldType  `json:"type"`
	Searchable bool       `json:"searchable,omitempty"`
	// Computed marks derived values. Informational only: it does not change
	// how the engine evaluates the field.
	Computed bool     `json:"computed,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

// GroupInfo describes a field group for presentation purposes.
type GroupInfo struct {
	Key   FieldGroup `json:"key"`
	Label string     `json:"label"`
	Icon  string     `json:"icon"`
}
