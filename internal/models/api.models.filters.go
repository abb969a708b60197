// FilePath: internal/models/api.models.filters.go
package models

// AlertFilters defines the available filter options for alert listings.
// Decoded from the query string by gorilla/schema.
type AlertFilters struct {
	Severity Severity  `schema:"severity"`
	Type     AlertType `schema:"type"`
	HiveID   string    `schema:"hiveId"`
	Resolved *bool     `schema:"resolved"`
}

// Match reports whether an alert passes the filter set. Zero-valued
// fields are wildcards.
func (f AlertFilters) Match(a Alert) bool {
	if f.Severity != "" && a.Severity != f.Severity {
		return false
	}
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.HiveID != "" && a.Hive.ID != f.HiveID {
		return false
	}
	if f.Resolved != nil && a.Resolved != *f.Resolved {
		return false
	}
	return true
}

// TopHivesParams bounds the analytics ranking query.
type TopHivesParams struct {
	N int `schema:"n"`
}
