package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Name: "Test",
	Fields: []Field{
		{Key: "name", Label: "Name", Kind: KindText, Searchable: true},
		{Key: "cat", Label: "Category", Kind: KindSelect, Options: []Option{
			{Value: float64(1), Label: "One"},
			{Value: float64(2), Label: "Two"},
		}},
		{Key: "price", Label: "Price", Kind: KindNumber, Filterable: true},
	},
}

func rec(name string, cat float64, price any) Record {
	return Record{"name": name, "cat": cat, "price": price}
}

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r["name"].(string))
	}
	return out
}

func TestDeriveView_Search(t *testing.T) {
	records := []Record{
		rec("Alpha", 1, 100.0),
		rec("beta", 2, 200.0),
	}

	t.Run("case-insensitive match", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{Search: "alp"})
		assert.Equal(t, []string{"Alpha"}, names(got))
	})

	t.Run("searches nested relation values", func(t *testing.T) {
		withRelation := []Record{
			{"name": "Order 1", "customer": map[string]any{"name": "Morten"}},
			{"name": "Order 2", "customer": map[string]any{"name": "Kari"}},
		}
		got := DeriveView(withRelation, testSchema, Query{Search: "morten"})
		assert.Equal(t, []string{"Order 1"}, names(got))
	})

	t.Run("never increases the result count", func(t *testing.T) {
		base := DeriveView(records, testSchema, Query{})
		searched := DeriveView(records, testSchema, Query{Search: "a"})
		assert.LessOrEqual(t, len(searched), len(base))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		_ = DeriveView(records, testSchema, Query{Search: "alp", Sort: Sort{Key: "name", Direction: Descending}})
		assert.Equal(t, []string{"Alpha", "beta"}, names(records))
	})
}

func TestDeriveView_CategoryFilter(t *testing.T) {
	records := []Record{
		rec("Alpha", 1, 100.0),
		rec("beta", 2, 200.0),
	}

	t.Run("strict equality on the first select field", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{Category: float64(2)})
		assert.Equal(t, []string{"beta"}, names(got))
	})

	t.Run("no coercion between types", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{Category: "2"})
		assert.Empty(t, got)
	})

	t.Run("nil category keeps everything", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{})
		assert.Len(t, got, 2)
	})

	t.Run("schema without select field ignores the category", func(t *testing.T) {
		noSelect := Schema{Fields: []Field{{Key: "name", Kind: KindText}}}
		got := DeriveView(records, noSelect, Query{Category: float64(2)})
		assert.Len(t, got, 2)
	})
}

func TestDeriveView_FieldFilters(t *testing.T) {
	records := []Record{
		rec("Alpha", 1, "1290.50"),
		rec("beta", 2, "290.00"),
		rec("gamma", 2, nil),
	}

	t.Run("case-sensitive contains", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{FieldFilters: map[string]string{"name": "a"}})
		assert.Equal(t, []string{"Alpha", "beta", "gamma"}, names(got))

		got = DeriveView(records, testSchema, Query{FieldFilters: map[string]string{"name": "A"}})
		assert.Equal(t, []string{"Alpha"}, names(got))
	})

	t.Run("absent values never match", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{FieldFilters: map[string]string{"price": "290"}})
		assert.Equal(t, []string{"Alpha", "beta"}, names(got))
	})

	t.Run("empty filter entries are skipped", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{FieldFilters: map[string]string{"name": ""}})
		assert.Len(t, got, 3)
	})

	t.Run("runs after the search stage", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{
			Search:       "beta",
			FieldFilters: map[string]string{"name": "a"},
		})
		assert.Equal(t, []string{"beta"}, names(got))
	})
}

func TestDeriveView_Sort(t *testing.T) {
	records := []Record{
		{"name": "c", "price": 3.0},
		{"name": "a", "price": 1.0},
		{"name": "b", "price": 2.0},
	}

	t.Run("ascending by string key", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{Sort: Sort{Key: "name", Direction: Ascending}})
		assert.Equal(t, []string{"a", "b", "c"}, names(got))
	})

	t.Run("descending by numeric key", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{Sort: Sort{Key: "price", Direction: Descending}})
		assert.Equal(t, []string{"c", "b", "a"}, names(got))
	})

	t.Run("numeric-looking strings sort lexicographically", func(t *testing.T) {
		mixed := []Record{
			{"name": "x", "price": "9"},
			{"name": "y", "price": "10"},
		}
		got := DeriveView(mixed, testSchema, Query{Sort: Sort{Key: "price", Direction: Ascending}})
		assert.Equal(t, []string{"y", "x"}, names(got))
	})

	t.Run("stable for equal keys in both directions", func(t *testing.T) {
		tied := []Record{
			{"name": "first", "price": 5.0},
			{"name": "second", "price": 5.0},
			{"name": "third", "price": 5.0},
		}
		asc := DeriveView(tied, testSchema, Query{Sort: Sort{Key: "price", Direction: Ascending}})
		assert.Equal(t, []string{"first", "second", "third"}, names(asc))

		desc := DeriveView(tied, testSchema, Query{Sort: Sort{Key: "price", Direction: Descending}})
		assert.Equal(t, []string{"first", "second", "third"}, names(desc))
	})

	t.Run("empty sort key leaves input order", func(t *testing.T) {
		got := DeriveView(records, testSchema, Query{})
		assert.Equal(t, []string{"c", "a", "b"}, names(got))
	})
}

func TestRenderFieldValue(t *testing.T) {
	record := Record{
		"name":     "Order 1",
		"status":   "open",
		"customer": map[string]any{"name": "Morten", "city": "Bergen"},
	}

	t.Run("path projection traverses relations", func(t *testing.T) {
		f := Field{Key: "customer_id", Project: PathProjection{"customer", "name"}}
		assert.Equal(t, "Morten", RenderFieldValue(record, f))
	})

	t.Run("dead-end path yields the null marker", func(t *testing.T) {
		f := Field{Key: "customer_id", Project: PathProjection{"customer", "shoe_size"}}
		assert.Equal(t, "null", RenderFieldValue(record, f))

		f = Field{Key: "customer_id", Project: PathProjection{"nope", "name"}}
		assert.Equal(t, "null", RenderFieldValue(record, f))
	})

	t.Run("computed projection is invoked with the record", func(t *testing.T) {
		f := Field{Key: "status", Project: ComputedProjection(func(r Record) any {
			return "STATUS:" + r["status"].(string)
		})}
		assert.Equal(t, "STATUS:open", RenderFieldValue(record, f))
	})

	t.Run("no projection returns the raw value", func(t *testing.T) {
		f := Field{Key: "name"}
		assert.Equal(t, "Order 1", RenderFieldValue(record, f))
	})

	t.Run("projection does not leak into filtering", func(t *testing.T) {
		schema := Schema{Fields: []Field{
			{Key: "customer_id", Kind: KindRelation, Project: PathProjection{"customer", "name"}},
		}}
		records := []Record{
			{"customer_id": float64(1), "customer": map[string]any{"name": "Morten"}},
		}
		// Filtering reads the raw customer_id, not the projected name.
		got := DeriveView(records, schema, Query{FieldFilters: map[string]string{"customer_id": "Morten"}})
		assert.Empty(t, got)
		got = DeriveView(records, schema, Query{FieldFilters: map[string]string{"customer_id": "1"}})
		assert.Len(t, got, 1)
	})
}

func TestSchemaLookups(t *testing.T) {
	f, ok := testSchema.CategoryField()
	require.True(t, ok)
	assert.Equal(t, "cat", f.Key)

	_, ok = Schema{}.CategoryField()
	assert.False(t, ok)

	f, ok = testSchema.FieldByKey("price")
	require.True(t, ok)
	assert.Equal(t, KindNumber, f.Kind)
}

func TestToRecords(t *testing.T) {
	type row struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	records, err := ToRecords([]row{{Name: "Chain", Price: 499}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Chain", records[0]["name"])
	assert.Equal(t, float64(499), records[0]["price"])
}
