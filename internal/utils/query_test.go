package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryList(t *testing.T) {
	tests := []struct {
		name string
		q    map[string][]string
		want []string
	}{
		{"missing", map[string][]string{}, nil},
		{"single", map[string][]string{"city": {"Riyadh"}}, []string{"Riyadh"}},
		{"comma separated", map[string][]string{"city": {"Riyadh, Jeddah"}}, []string{"Riyadh", "Jeddah"}},
		{"repeated", map[string][]string{"city": {"Riyadh", " Jeddah "}}, []string{"Riyadh", "Jeddah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQueryList(tt.q, "city"))
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	assert.Equal(t, 20, ParsePositiveInt("", 20))
	assert.Equal(t, 3, ParsePositiveInt("3", 20))
	assert.Equal(t, 20, ParsePositiveInt("0", 20))
	assert.Equal(t, 20, ParsePositiveInt("-5", 20))
	assert.Equal(t, 20, ParsePositiveInt("abc", 20))
}

func TestParseNonNegativeFloat(t *testing.T) {
	assert.Equal(t, 0.0, ParseNonNegativeFloat(""))
	assert.Equal(t, 4.5, ParseNonNegativeFloat("4.5"))
	assert.Equal(t, 0.0, ParseNonNegativeFloat("-1"))
	assert.Equal(t, 0.0, ParseNonNegativeFloat("high"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("1"))
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool(" TRUE "))
	assert.False(t, ParseBool("yes"))
	assert.False(t, ParseBool("0"))
	assert.False(t, ParseBool(""))
}
