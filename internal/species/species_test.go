package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreatLevelLabelRoundTrip(t *testing.T) {
	t.Parallel()

	// Every level must map to a unique label and parse back to itself.
	seen := make(map[string]ThreatLevel)
	for _, level := range []ThreatLevel{ThreatSafe, ThreatMild, ThreatModerate, ThreatDangerous, ThreatDeadly} {
		label := level.String()
		require.NotEqual(t, "unknown", label)

		prev, dup := seen[label]
		require.False(t, dup, "label %q shared by %v and %v", label, prev, level)
		seen[label] = level

		parsed, err := ParseThreatLevel(label)
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func TestThreatLevelOrdering(t *testing.T) {
	t.Parallel()

	assert.Less(t, ThreatSafe, ThreatMild)
	assert.Less(t, ThreatMild, ThreatModerate)
	assert.Less(t, ThreatModerate, ThreatDangerous)
	assert.Less(t, ThreatDangerous, ThreatDeadly)
}

func TestParseThreatLevelNormalizesInput(t *testing.T) {
	t.Parallel()

	parsed, err := ParseThreatLevel("  DEADLY ")
	require.NoError(t, err)
	assert.Equal(t, ThreatDeadly, parsed)

	_, err = ParseThreatLevel("catastrophic")
	assert.Error(t, err)
}

func TestCatalogFirstEntryIsFallbackRecord(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	require.NotEmpty(t, catalog)
	assert.Equal(t, "Eastern Diamondback Rattlesnake", catalog[0].Name)
}

func TestCatalogNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, rec := range Catalog() {
		require.False(t, seen[rec.Name], "duplicate catalog name %q", rec.Name)
		seen[rec.Name] = true
	}
}

func TestCatalogDangerousSpeciesCarryPrecautions(t *testing.T) {
	t.Parallel()

	for _, rec := range Catalog() {
		if rec.ThreatLevel.IsDangerousToHumans() {
			assert.NotEmpty(t, rec.Precautions, "species %q has no precautions", rec.Name)
		}
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	rec := ByName("king cobra")
	require.NotNil(t, rec)
	assert.Equal(t, "Ophiophagus hannah", rec.ScientificName)

	assert.Nil(t, ByName("basilisk"))
}

func TestByScientificName(t *testing.T) {
	t.Parallel()

	rec := ByScientificName("crotalus adamanteus")
	require.NotNil(t, rec)
	assert.Equal(t, "Eastern Diamondback Rattlesnake", rec.Name)

	assert.Nil(t, ByScientificName("draco volans"))
}
