package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%khalas dates%", searchPattern("khalas-dates"))
	assert.Equal(t, "%riyadh%", searchPattern("riyadh"))
}

func TestSearchPatternEscapesLikeMetacharacters(t *testing.T) {
	// A slug decoding to "%" must not match every row.
	assert.Equal(t, `%100\%%`, searchPattern("100%"))
	assert.Equal(t, `%a\_b%`, searchPattern("a_b"))
	assert.Equal(t, `%back\\slash%`, searchPattern(`back\slash`))
}

func TestReplaceHyphens(t *testing.T) {
	assert.Equal(t, "khalas dates", replaceHyphens("khalas-dates"))
	assert.Equal(t, "riyadh", replaceHyphens("riyadh"))
	assert.Equal(t, "a b c", replaceHyphens("a-b-c"))
}

func TestDisplayName(t *testing.T) {
	stored := "Al Kharj"
	empty := ""

	assert.Equal(t, "Al Kharj", displayName(&stored, "al-kharj"))
	assert.Equal(t, "Al Kharj", displayName(&empty, "al-kharj"))
	assert.Equal(t, "Al Kharj", displayName(nil, "al-kharj"))
}
