package tableview

// Record is one row of raw entity data, as decoded from JSON. Nested
// relation objects appear as nested maps under their alias key.
type Record = map[string]any

// Kind is the closed set of field kinds a schema can declare. Rendering and
// form collection dispatch on the kind; adding one means adding a variant
// here, not a string check at a call site.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindSelect
	KindRelation
	KindComputed
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindSelect:
		return "select"
	case KindRelation:
		return "relation"
	case KindComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// Option is one selectable value for a KindSelect field.
type Option struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Projection is a display-only substitute for a field's raw value. It is a
// closed variant: either a path into nested relations or a computed function
// of the record. Projections never feed back into search, filtering, or
// sorting, which always read the raw field value.
type Projection interface {
	isProjection()
}

// PathProjection traverses the record through each key in order and renders
// whatever the walk ends on.
type PathProjection []string

func (PathProjection) isProjection() {}

// ComputedProjection derives a presentation value from the whole record.
type ComputedProjection func(Record) any

func (ComputedProjection) isProjection() {}

// Field describes one column of an entity's table/form.
type Field struct {
	Key        string
	Label      string
	Kind       Kind
	Searchable bool
	Filterable bool
	Editable   bool
	Required   bool
	Options    []Option
	Project    Projection
}

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort is a single-key sort spec. An empty key means unsorted.
type Sort struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Schema is the ordered field list driving a generic table or form for one
// entity type.
type Schema struct {
	Name        string
	Fields      []Field
	DefaultSort Sort
}

// CategoryField returns the first select-kind field of the schema, which is
// the one the category filter buttons bind to.
func (s Schema) CategoryField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Kind == KindSelect {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByKey looks a field up by its raw attribute key.
func (s Schema) FieldByKey(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
