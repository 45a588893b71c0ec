// Package importer cleans raw scraped rows before they are upserted into the
// directory. The passes run in a fixed order: drop non-dates businesses,
// standardize categories, drop invalid rows, dedupe by name.
package importer

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Keywords in a name or category that mark a row as not a dates business.
var nonDatesKeywords = []string{
	"hospital", "مستشفى", "clinic", "عيادة",
	"pharmacy", "صيدلية", "bank", "بنك",
	"hotel", "فندق", "school", "مدرسة",
	"restaurant", "مطعم", "coffee", "قهوة",
	"university", "جامعة", "gas station", "محطة وقود",
	"mosque", "مسجد", "mall", "مول",
}

// Categories rejected outright even without a keyword hit.
var invalidCategories = []string{
	"hospital", "المستشفى الحكومي", "clinic",
	"pharmacy", "school", "bank", "hotel",
	"restaurant", "attractions", "معالم سياحية",
}

// categoryRule maps a keyword found in a raw category to its canonical name.
// Order matters: earlier rules win.
type categoryRule struct {
	keyword  string
	standard string
}

var categoryRules = []categoryRule{
	{"متجر", "Dates Shop"},
	{"محل", "Dates Shop"},
	{"معرض", "Dates Shop"},
	{"مصنع", "Dates Manufacturer"},
	{"مزرعة", "Dates Farm"},
	{"تاجر جملة", "Dates Wholesaler"},
	{"مورد", "Dates Supplier"},
	{"store", "Dates Shop"},
	{"shop", "Dates Shop"},
	{"factory", "Dates Manufacturer"},
	{"manufacturer", "Dates Manufacturer"},
	{"farm", "Dates Farm"},
	{"wholesaler", "Dates Wholesaler"},
	{"wholesale", "Dates Wholesaler"},
	{"supplier", "Dates Supplier"},
	{"exporter", "Dates Supplier"},
}

// DefaultCategory is used when no rule matches.
const DefaultCategory = "Dates Supplier"

// RawRow is one uncleaned row from an Outscraper export or API response.
// Numeric fields stay strings until cleaning; exports carry "" and "null".
type RawRow struct {
	Name      string
	Category  string
	City      string
	Phone     string
	Website   string
	Rating    string
	MapsURL   string
	Address   string
	Latitude  string
	Longitude string
}

// CleanRow is a validated row ready for upsert.
type CleanRow struct {
	Name      string
	Category  string
	City      string
	Phone     *string
	Website   *string
	Rating    *float64
	MapsURL   *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// Summary reports what one cleaning run did.
type Summary struct {
	Input      int
	Kept       int
	NonDates   int
	Invalid    int
	Duplicates int
}

// Cleaner transforms raw rows into clean, deduplicated listings.
type Cleaner struct {
	logr *zap.Logger
}

func NewCleaner(logr *zap.Logger) *Cleaner {
	return &Cleaner{logr: logr}
}

// Clean runs all passes over the rows and returns the surviving listings in
// input order together with a summary.
func (c *Cleaner) Clean(rows []RawRow) ([]CleanRow, Summary) {
	sum := Summary{Input: len(rows)}
	seen := make(map[string]struct{})
	out := make([]CleanRow, 0, len(rows))

	for _, row := range rows {
		name := normalizeField(row.Name)
		city := normalizeField(row.City)

		if IsNonDatesBusiness(row.Name, row.Category) {
			sum.NonDates++
			c.logr.Debug("dropped non-dates business", zap.String("name", row.Name))
			continue
		}

		if name == "" || city == "" {
			sum.Invalid++
			c.logr.Debug("dropped invalid row", zap.String("name", row.Name))
			continue
		}

		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			sum.Duplicates++
			c.logr.Debug("dropped duplicate", zap.String("name", name))
			continue
		}
		seen[key] = struct{}{}

		out = append(out, CleanRow{
			Name:      name,
			Category:  StandardizeCategory(row.Category),
			City:      city,
			Phone:     optionalString(row.Phone),
			Website:   optionalString(row.Website),
			Rating:    optionalRating(row.Rating),
			MapsURL:   optionalString(row.MapsURL),
			Address:   optionalString(row.Address),
			Latitude:  optionalFloat(row.Latitude),
			Longitude: optionalFloat(row.Longitude),
		})
	}

	sum.Kept = len(out)
	c.logr.Info("cleaning finished",
		zap.Int("input", sum.Input),
		zap.Int("kept", sum.Kept),
		zap.Int("non_dates", sum.NonDates),
		zap.Int("invalid", sum.Invalid),
		zap.Int("duplicates", sum.Duplicates))
	return out, sum
}

// IsNonDatesBusiness reports whether the name or category marks a row as
// outside the dates domain.
func IsNonDatesBusiness(name, category string) bool {
	lowerName := strings.ToLower(name)
	lowerCategory := strings.ToLower(strings.TrimSpace(category))

	for _, kw := range nonDatesKeywords {
		if strings.Contains(lowerName, kw) || strings.Contains(lowerCategory, kw) {
			return true
		}
	}
	for _, invalid := range invalidCategories {
		if lowerCategory == strings.ToLower(invalid) {
			return true
		}
	}
	return false
}

// StandardizeCategory maps a free-text category onto the canonical set.
func StandardizeCategory(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.standard
		}
	}
	return DefaultCategory
}

// normalizeField trims a field and treats the literal "null" as empty.
func normalizeField(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "null") {
		return ""
	}
	return s
}

func optionalString(s string) *string {
	s = normalizeField(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(s string) *float64 {
	s = normalizeField(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// optionalRating parses a rating and rejects values outside [0, 5].
func optionalRating(s string) *float64 {
	f := optionalFloat(s)
	if f == nil || *f < 0 || *f > 5 {
		return nil
	}
	return f
}
