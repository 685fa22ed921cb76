package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciesIsTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		country string
	}{
		{"empty country", ""},
		{"unknown code", "zz"},
		{"full country name", "United States"},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records := Species(tt.country, "")
			assert.NotEmpty(t, records, "lookup must never return an empty list")
		})
	}
}

func TestSpeciesIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	upper := Species("US", "")
	lower := Species("us", "")
	assert.Equal(t, upper, lower)
}

func TestSpeciesKnownRegions(t *testing.T) {
	t.Parallel()

	us := Species("us", "")
	require.Len(t, us, 5)
	assert.Equal(t, "Eastern Diamondback Rattlesnake", us[0].Name)

	in := Species("in", "")
	require.Len(t, in, 5)
	assert.Equal(t, "Indian Cobra", in[0].Name)

	au := Species("au", "Queensland")
	require.Len(t, au, 4)
	assert.Equal(t, "Eastern Brown Snake", au[0].Name)
}

func TestSpeciesUnknownCountryGetsDefaultBucket(t *testing.T) {
	t.Parallel()

	fallback := Species("fi", "")
	require.Len(t, fallback, 2)
	assert.Equal(t, "Common Garter Snake", fallback[0].Name)
	assert.Equal(t, "Ball Python", fallback[1].Name)
}

func TestStateDoesNotAffectSelection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Species("us", "Florida"), Species("us", "Arizona"))
}

func TestKeysIncludesDefault(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Keys(), DefaultKey)
}
