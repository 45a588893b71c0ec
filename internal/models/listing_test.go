package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"number", `4.5`, ptr(4.5)},
		{"integer", `4`, ptr(4)},
		{"numeric string", `"4.5"`, ptr(4.5)},
		{"json null", `null`, nil},
		{"empty string", `""`, nil},
		{"literal null string", `"null"`, nil},
		{"non-numeric string", `"n/a"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NullableFloat
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			if tt.want == nil {
				assert.Nil(t, n.Value)
			} else {
				require.NotNil(t, n.Value)
				assert.Equal(t, *tt.want, *n.Value)
			}
		})
	}
}

func TestNullableFloatInRequest(t *testing.T) {
	// Mixed payload the way spreadsheet-sourced clients actually send it.
	body := `{"name":"Al Qassim Dates","rating":"4.7","latitude":null,"longitude":""}`

	var req UpsertListingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.Rating.Value)
	assert.Equal(t, 4.7, *req.Rating.Value)
	assert.Nil(t, req.Latitude.Value)
	assert.Nil(t, req.Longitude.Value)
}

func TestNullableFloatMarshal(t *testing.T) {
	b, err := json.Marshal(NullableFloat{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(NullableFloat{Value: ptr(3.5)})
	require.NoError(t, err)
	assert.Equal(t, "3.5", string(b))
}

func TestHasCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  *float64
		lng  *float64
		want bool
	}{
		{"both", ptr(24.7), ptr(46.7), true},
		{"latitude only", ptr(24.7), nil, false},
		{"longitude only", nil, ptr(46.7), false},
		{"neither", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{Latitude: tt.lat, Longitude: tt.lng}
			assert.Equal(t, tt.want, l.HasCoordinates())
		})
	}
}

func TestHasPhoneAndWebsite(t *testing.T) {
	empty := ""
	phone := "+966500000000"
	site := "https://example.sa"

	assert.False(t, (&Listing{}).HasPhone())
	assert.False(t, (&Listing{Phone: &empty}).HasPhone())
	assert.True(t, (&Listing{Phone: &phone}).HasPhone())

	assert.False(t, (&Listing{}).HasWebsite())
	assert.False(t, (&Listing{Website: &empty}).HasWebsite())
	assert.True(t, (&Listing{Website: &site}).HasWebsite())
}

func ptr(f float64) *float64 { return &f }
