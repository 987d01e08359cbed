package domain

import "strings"

// Holiday is an externally sourced, read-only calendar annotation. Records
// are never created or mutated locally; upstream fields beyond the ones the
// planner reads are passed through untouched.
type Holiday struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	Name        string   `json:"name"`
	LocalName   string   `json:"localName"`
	CountryCode string   `json:"countryCode,omitempty"`
	Fixed       bool     `json:"fixed,omitempty"`
	Global      bool     `json:"global,omitempty"`
	Counties    []string `json:"counties,omitempty"`
	LaunchYear  int      `json:"launchYear,omitempty"`
	Type        string   `json:"type,omitempty"`
}

// DisplayName returns the text shown on a calendar cell. The upstream feed
// mislabels December 27 as "Christmas Eve" in some locales, so for that
// month-day the local name wins over the international one, for any year.
func (h *Holiday) DisplayName() string {
	if h == nil {
		return ""
	}
	if strings.HasSuffix(h.Date, "-12-27") && h.LocalName != "" {
		return h.LocalName
	}
	return h.Name
}

// DedupeKey is the composite identity used when merging per-country feeds.
// Duplicate records for the same (date, name) are assumed field-identical.
func (h *Holiday) DedupeKey() string {
	return h.Date + "\x00" + h.Name
}
