package tableview

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Query is the full derived-view state for one list screen: free-text
// search, category equality filter, per-field contains filters, and the
// sort spec. The zero value passes every record through unchanged.
type Query struct {
	Search       string
	Category     any
	FieldFilters map[string]string
	Sort         Sort
}

// DeriveView recomputes the filtered, sorted view of records. The stages run
// in a fixed order, each over the previous stage's output: search, category
// filter, per-field filters, sort. The input slice is never mutated and the
// whole pipeline reruns from scratch on every call; there is no incremental
// diffing.
func DeriveView(records []Record, schema Schema, q Query) []Record {
	filtered := make([]Record, len(records))
	copy(filtered, records)

	// Free-text search over the serialized top-level values. Nested relation
	// objects are searchable through their serialized form; this is coarse
	// full-text matching, not per-field.
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		kept := filtered[:0]
		for _, r := range filtered {
			if strings.Contains(serializeValues(r), term) {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	// Category filter: strict equality against the first select field.
	if q.Category != nil {
		if catField, ok := schema.CategoryField(); ok {
			kept := filtered[:0]
			for _, r := range filtered {
				if strictEqual(r[catField.Key], q.Category) {
					kept = append(kept, r)
				}
			}
			filtered = kept
		}
	}

	// Per-field contains filters, case-sensitive on the raw stringified
	// value. Absent or empty-ish values never match.
	for key, substr := range q.FieldFilters {
		if substr == "" {
			continue
		}
		kept := filtered[:0]
		for _, r := range filtered {
			v, ok := r[key]
			if ok && truthy(v) && strings.Contains(stringify(v), substr) {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	if q.Sort.Key != "" {
		key := q.Sort.Key
		desc := q.Sort.Direction == Descending
		sort.SliceStable(filtered, func(i, j int) bool {
			c := compareValues(filtered[i][key], filtered[j][key])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	return filtered
}

// RenderFieldValue resolves the display value of a field for a record. Path
// projections walk nested keys and stringify the result; a walk that dead
// ends yields the literal "null" marker instead of failing. Computed
// projections return their value as-is, which may be a structured
// presentation payload. Without a projection the raw value is returned
// untouched. Rendering is read-only and has no effect on DeriveView.
func RenderFieldValue(r Record, f Field) any {
	switch p := f.Project.(type) {
	case PathProjection:
		cur := any(r)
		for _, key := range p {
			m, ok := cur.(map[string]any)
			if !ok {
				cur = nil
				break
			}
			cur = m[key]
		}
		if cur == nil {
			return "null"
		}
		return stringify(cur)
	case ComputedProjection:
		return p(r)
	default:
		return r[f.Key]
	}
}

// RenderRecords projects every schema field of each record through
// RenderFieldValue, producing rows of display values keyed by field. Fields
// outside the schema are dropped. The input records are not modified.
func RenderRecords(records []Record, schema Schema) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		row := make(Record, len(schema.Fields))
		for _, f := range schema.Fields {
			row[f.Key] = RenderFieldValue(r, f)
		}
		out = append(out, row)
	}
	return out
}

// ToRecords converts a slice of entity structs into records via a JSON
// round-trip, so field keys and value types match what the view pipeline
// serializes.
func ToRecords(v any) ([]Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

// serializeValues flattens a record's top-level values into one lowercase
// JSON blob. Values serialize in sorted-key order so the blob is stable.
func serializeValues(r Record) string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]any, 0, len(keys))
	for _, k := range keys {
		values = append(values, r[k])
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return strings.ToLower(fmt.Sprint(values))
	}
	return strings.ToLower(string(raw))
}

// strictEqual compares without coercion; values of different dynamic types
// are never equal.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

// truthy mirrors the presence check the filter stage applies before
// substring matching: nil, empty strings, zero numbers, and false do not
// participate.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprint(t)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return strings.Trim(string(raw), `"`)
	}
}

// compareValues orders two raw values with generic less/greater semantics:
// numbers numerically, strings lexicographically. Numeric-looking strings
// are not coerced. Unknown or nil pairings compare equal, so a stable sort
// leaves their relative order alone.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		return 0
	}
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return strings.Compare(as, bs)
	}
	if aNum != bNum || aStr != bStr {
		return 0
	}
	return strings.Compare(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
