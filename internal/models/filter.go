package models

// BookFilter holds the optional query predicates. A nil field applies no restriction.
type BookFilter struct {
	Author          *string
	PriceBiggerThan *int
	PriceLessThan   *int
	YearBiggerThan  *int
	YearLessThan    *int
	// Genres is the raw comma separated token list as received.
	Genres *string
}

// FilterMode selects between the historical filter semantics and the fixed ones.
type FilterMode string

const (
	// FilterModeLegacy keeps price-bigger-than comparing against the year and
	// genres excluding overlapping records.
	FilterModeLegacy FilterMode = "legacy"
	// FilterModeCorrected compares price-bigger-than against the price and keeps
	// records sharing at least one genre.
	FilterModeCorrected FilterMode = "corrected"
)
