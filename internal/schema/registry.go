// Package schema holds the static catalog of equipment record fields and
// exposes read-only lookups over it. Every component that trusts a field key
// treats a lookup miss as "field has no defined semantics" and degrades to a
// no-op rather than failing.
package schema

import "metreg/model"

// Registry is a read-only index over the field catalog.
type Registry struct {
	fields map[string]model.FieldDefinition
	order  []string
}

// NewRegistry builds the registry from the static catalog.
func NewRegistry() *Registry {
	r := &Registry{
		fields: make(map[string]model.FieldDefinition, len(catalog)),
		order:  make([]string, 0, len(catalog)),
	}
	for _, def := range catalog {
		r.fields[def.Key] = def
		r.order = append(r.order, def.Key)
	}
	return r
}

// Field returns the definition for the given key.
func (r *Registry) Field(key string) (model.FieldDefinition, bool) {
	def, ok := r.fields[key]
	return def, ok
}

// Has reports whether the key names a defined field.
func (r *Registry) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Fields returns all definitions in catalog order.
func (r *Registry) Fields() []model.FieldDefinition {
	defs := make([]model.FieldDefinition, 0, len(r.order))
	for _, key := range r.order {
		defs = append(defs, r.fields[key])
	}
	return defs
}

// Searchable returns the definitions included in the free-text search scan,
// in catalog order.
func (r *Registry) Searchable() []model.FieldDefinition {
	var defs []model.FieldDefinition
	for _, key := range r.order {
		if def := r.fields[key]; def.Searchable {
			defs = append(defs, def)
		}
	}
	return defs
}

// Groups returns the four-group presentation catalog.
func (r *Registry) Groups() []model.GroupInfo {
	return append([]model.GroupInfo(nil), groups...)
}
