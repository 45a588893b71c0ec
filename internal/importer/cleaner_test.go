package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsNonDatesBusiness(t *testing.T) {
	tests := []struct {
		name     string
		bizName  string
		category string
		want     bool
	}{
		{"english keyword in name", "Riyadh General Hospital", "Health", true},
		{"arabic keyword in name", "مستشفى الملك فهد", "", true},
		{"keyword in category", "Golden Palm", "Restaurant", true},
		{"arabic keyword in category", "النخيل", "مطعم شعبي", true},
		{"invalid category exact", "Palm Trading", "attractions", true},
		{"dates shop kept", "Al Qassim Dates", "Dates Shop", false},
		{"arabic dates shop kept", "تمور القصيم", "متجر تمور", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonDatesBusiness(tt.bizName, tt.category))
		})
	}
}

func TestStandardizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"متجر تمور", "Dates Shop"},
		{"Dates store", "Dates Shop"},
		{"مصنع تمور", "Dates Manufacturer"},
		{"Date factory", "Dates Manufacturer"},
		{"مزرعة نخيل", "Dates Farm"},
		{"Palm farm", "Dates Farm"},
		{"تاجر جملة تمور", "Dates Wholesaler"},
		{"Wholesale dates", "Dates Wholesaler"},
		{"مورد تمور", "Dates Supplier"},
		{"Dates exporter", "Dates Supplier"},
		{"something else entirely", DefaultCategory},
		{"", DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, StandardizeCategory(tt.raw))
		})
	}
}

func TestCleanPasses(t *testing.T) {
	rows := []RawRow{
		{Name: "Al Qassim Dates", Category: "متجر تمور", City: "Buraydah", Rating: "4.7"},
		{Name: "King Fahd Hospital", Category: "Hospital", City: "Riyadh"},
		{Name: "null", Category: "Dates Shop", City: "Riyadh"},
		{Name: "Palm Farm Co", Category: "farm", City: ""},
		{Name: "al qassim dates", Category: "Dates Shop", City: "Buraydah"},
		{Name: "Madinah Dates", Category: "unknown", City: "Madinah", Rating: "null"},
	}

	cleaner := NewCleaner(zap.NewNop())
	out, sum := cleaner.Clean(rows)

	require.Len(t, out, 2)
	assert.Equal(t, "Al Qassim Dates", out[0].Name)
	assert.Equal(t, "Dates Shop", out[0].Category)
	require.NotNil(t, out[0].Rating)
	assert.Equal(t, 4.7, *out[0].Rating)

	assert.Equal(t, "Madinah Dates", out[1].Name)
	assert.Equal(t, DefaultCategory, out[1].Category)
	assert.Nil(t, out[1].Rating)

	assert.Equal(t, Summary{Input: 6, Kept: 2, NonDates: 1, Invalid: 2, Duplicates: 1}, sum)
}

func TestCleanDedupeIsCaseInsensitive(t *testing.T) {
	rows := []RawRow{
		{Name: "Tamrah House", Category: "Dates Shop", City: "Jeddah"},
		{Name: "  TAMRAH HOUSE ", Category: "Dates Shop", City: "Jeddah"},
	}

	cleaner := NewCleaner(zap.NewNop())
	out, sum := cleaner.Clean(rows)

	require.Len(t, out, 1)
	assert.Equal(t, "Tamrah House", out[0].Name)
	assert.Equal(t, 1, sum.Duplicates)
}

func TestCleanNullFields(t *testing.T) {
	rows := []RawRow{
		{
			Name:     "Hail Dates",
			Category: "Dates Shop",
			City:     "Hail",
			Phone:    "null",
			Website:  "",
			Rating:   "6",
			Latitude: "not-a-number",
		},
	}

	cleaner := NewCleaner(zap.NewNop())
	out, _ := cleaner.Clean(rows)

	require.Len(t, out, 1)
	assert.Nil(t, out[0].Phone)
	assert.Nil(t, out[0].Website)
	assert.Nil(t, out[0].Rating) // out of the 0-5 range
	assert.Nil(t, out[0].Latitude)
}
