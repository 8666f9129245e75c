// Package models defines the data structures shared across the generator pipeline.
package models

// Placeholder is the substitute value for any field absent from the source data.
const Placeholder = "Unknown"

// RawRecord is a single animal entry as returned by the API.
// The shape varies per entry: any of the nested groups may be absent,
// and characteristic keys are not drawn from a fixed set.
type RawRecord struct {
	Name            string            `json:"name"`
	Taxonomy        map[string]string `json:"taxonomy"`
	Locations       []string          `json:"locations"`
	Characteristics map[string]string `json:"characteristics"`
}

// Animal is the flat, display-ready form of a RawRecord.
// Invariant: Name, Diet, Location and Type are never empty; a field that was
// absent in the raw record holds Placeholder instead.
type Animal struct {
	Name            string
	Diet            string
	Location        string
	Type            string
	Characteristics map[string]string
}

// FilterCriterion selects animals by a single characteristic.
// Key and Value are compared case-insensitively.
type FilterCriterion struct {
	Key   string
	Value string
}
