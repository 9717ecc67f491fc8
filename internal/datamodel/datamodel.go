// Package datamodel holds the declarative field schemas driving the generic
// list views and forms, one per entity type. Labels are what the shop staff
// see, so they stay Norwegian.
package datamodel

import (
	"fmt"
	"time"

	"moto-backoffice/internal/pricing"
	"moto-backoffice/internal/tableview"

	"github.com/shopspring/decimal"
)

// Customers lists the customer registry columns.
func Customers() tableview.Schema {
	return tableview.Schema{
		Name: "Kunder",
		Fields: []tableview.Field{
			{Key: "created_at", Label: "Opprettet", Kind: tableview.KindDate, Project: localTime("created_at")},
			{Key: "name", Label: "Kunde", Kind: tableview.KindText, Searchable: true, Editable: true, Required: true},
			{Key: "street", Label: "Adresse", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "zip", Label: "Postnummer", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "city", Label: "Poststed", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "country", Label: "Land", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "phone", Label: "Telefon", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "email", Label: "Epost", Kind: tableview.KindText, Searchable: true, Editable: true},
		},
		DefaultSort: tableview.Sort{Key: "created_at", Direction: tableview.Descending},
	}
}

// Bikes lists the bike registry columns.
func Bikes() tableview.Schema {
	return tableview.Schema{
		Name: "Sykler",
		Fields: []tableview.Field{
			{Key: "created_at", Label: "Opprettet", Kind: tableview.KindDate, Project: localTime("created_at")},
			{Key: "license_plate", Label: "Skiltnummer", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "vin", Label: "Rammenummer", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "make", Label: "Merke", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "model", Label: "Modellbetegnelse", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "model_year", Label: "Årsmodell", Kind: tableview.KindText, Searchable: true, Editable: true},
		},
		DefaultSort: tableview.Sort{Key: "created_at", Direction: tableview.Descending},
	}
}

// WorkOrders lists the work-order overview columns. The customer and bike
// columns project into the embedded relation objects for display; search
// and filtering still read the raw foreign keys.
func WorkOrders() tableview.Schema {
	return tableview.Schema{
		Name: "Arbeidsordre",
		Fields: []tableview.Field{
			{Key: "created_at", Label: "Opprettet", Kind: tableview.KindDate, Project: localTime("created_at")},
			{Key: "id", Label: "Ordre#", Kind: tableview.KindNumber},
			{Key: "customer_id", Label: "Kunde", Kind: tableview.KindRelation, Searchable: true,
				Project: tableview.PathProjection{"customer", "name"}},
			{Key: "bike_id", Label: "Sykkel", Kind: tableview.KindRelation, Searchable: true,
				Project: tableview.ComputedProjection(describeBike)},
			{Key: "notes", Label: "Notater", Kind: tableview.KindText, Searchable: true, Editable: true,
				Project: tableview.ComputedProjection(truncateNotes)},
			{Key: "status", Label: "Status", Kind: tableview.KindSelect, Searchable: true, Editable: true,
				Options: WorkOrderStatusOptions()},
			{Key: "total_inc_vat", Label: "Total", Kind: tableview.KindNumber,
				Project: tableview.ComputedProjection(formatNOK("total_inc_vat"))},
		},
		DefaultSort: tableview.Sort{Key: "created_at", Direction: tableview.Descending},
	}
}

// Inventory lists the parts stock columns.
func Inventory() tableview.Schema {
	return tableview.Schema{
		Name: "Lagerbeholdning",
		Fields: []tableview.Field{
			{Key: "item_number", Label: "Varenummer", Kind: tableview.KindText, Searchable: true, Editable: true, Required: true},
			{Key: "description", Label: "Beskrivelse", Kind: tableview.KindText, Searchable: true, Editable: true},
			{Key: "in_stock", Label: "Antall på lager", Kind: tableview.KindNumber, Editable: true},
			{Key: "price_in", Label: "Innkjøpspris (øre)", Kind: tableview.KindNumber, Editable: true},
			{Key: "price_out", Label: "Utsalgspris (øre)", Kind: tableview.KindNumber, Editable: true},
			{Key: "vat", Label: "MVA-sats", Kind: tableview.KindNumber, Editable: true},
			{Key: "barcode", Label: "Strekkode", Kind: tableview.KindText, Searchable: true, Editable: true},
		},
		DefaultSort: tableview.Sort{Key: "item_number", Direction: tableview.Ascending},
	}
}

// Todos lists the to-do tracker columns.
func Todos() tableview.Schema {
	return tableview.Schema{
		Name: "ToDo",
		Fields: []tableview.Field{
			{Key: "created_at", Label: "Opprettet", Kind: tableview.KindDate, Project: localTime("created_at")},
			{Key: "what", Label: "Hva", Kind: tableview.KindText, Searchable: true, Editable: true, Required: true},
			{Key: "status", Label: "Status", Kind: tableview.KindSelect, Searchable: true, Editable: true,
				Options: []tableview.Option{
					{Value: "todo", Label: "ToDo"},
					{Value: "waiting", Label: "Venter"},
					{Value: "completed", Label: "Ferdig"},
				}},
			{Key: "customer_id", Label: "Kunde", Kind: tableview.KindRelation, Searchable: true,
				Project: tableview.PathProjection{"customer", "name"}},
			{Key: "bike_id", Label: "Sykkel", Kind: tableview.KindRelation, Searchable: true,
				Project: tableview.ComputedProjection(describeBike)},
		},
		DefaultSort: tableview.Sort{Key: "created_at", Direction: tableview.Descending},
	}
}

// WorkOrderStatusOptions is the select option list shared by the table
// schema and the edit form.
func WorkOrderStatusOptions() []tableview.Option {
	return []tableview.Option{
		{Value: "open", Label: "Åpen"},
		{Value: "finished", Label: "Ferdig"},
		{Value: "paid", Label: "Betalt"},
		{Value: "deleted", Label: "Slettet"},
	}
}

// ByEntity resolves a schema by its URL slug.
func ByEntity(entity string) (tableview.Schema, bool) {
	switch entity {
	case "customers":
		return Customers(), true
	case "bikes":
		return Bikes(), true
	case "work-orders":
		return WorkOrders(), true
	case "inventory":
		return Inventory(), true
	case "todos":
		return Todos(), true
	}
	return tableview.Schema{}, false
}

// CollectValue turns a raw form input into the typed value for a field,
// applying the numeric fallbacks instead of rejecting bad input.
func CollectValue(f tableview.Field, raw string) any {
	switch f.Kind {
	case tableview.KindNumber:
		if f.Key == "quantity" {
			return pricing.ParseQuantity(raw)
		}
		return pricing.ParseAmount(raw)
	default:
		return raw
	}
}

// ValidateForm checks required editable fields and returns field key to
// message for every violation.
func ValidateForm(s tableview.Schema, values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, f := range s.Fields {
		if f.Required && values[f.Key] == "" {
			errs[f.Key] = fmt.Sprintf("%s er påkrevd", f.Label)
		}
	}
	return errs
}

// localTime renders a timestamp column the way the screens show it, with a
// dash for records missing one.
func localTime(key string) tableview.ComputedProjection {
	return func(r tableview.Record) any {
		raw, _ := r[key].(string)
		if raw == "" {
			return "-"
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return raw
		}
		return ts.Local().Format("02.01.2006 15:04")
	}
}

// describeBike composes the one-line bike description used wherever a bike
// relation is shown: plate (or VIN when unregistered), then year, make and
// model.
func describeBike(r tableview.Record) any {
	bike, ok := r["bike"].(map[string]any)
	if !ok {
		return "-"
	}
	ident, _ := bike["license_plate"].(string)
	if ident == "" {
		ident, _ = bike["vin"].(string)
	}
	year, _ := bike["model_year"].(string)
	brand, _ := bike["make"].(string)
	model, _ := bike["model"].(string)
	return fmt.Sprintf("%s - %s %s %s", ident, year, brand, model)
}

// truncateNotes caps the notes column at 50 characters for the overview.
func truncateNotes(r tableview.Record) any {
	text, _ := r["notes"].(string)
	if text == "" {
		return "-"
	}
	const maxLength = 50
	runes := []rune(text)
	if len(runes) > maxLength {
		return string(runes[:maxLength]) + "..."
	}
	return text
}

// formatNOK renders an amount column as fixed two-decimal kroner.
func formatNOK(key string) tableview.ComputedProjection {
	return func(r tableview.Record) any {
		amount, _ := r[key].(float64)
		return "kr " + decimal.NewFromFloat(amount).StringFixed(2)
	}
}
