package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCoralSnakeConjunction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
	}{
		{"plain", "a snake with yellow and black bands"},
		{"mixed case", "YELLOW stripes over BLACK scales"},
		{"keywords embedded", "yellowish rings touching blackish rings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, err := Match(tt.description, "Florida")
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, "Eastern Coral Snake", rec.Name)
		})
	}
}

func TestMatchRequiresConjunctionNotDisjunction(t *testing.T) {
	t.Parallel()

	// "black" alone must not select the coral snake record.
	rec, err := Match("Large black snake with diamond pattern", "Florida")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Eastern Diamondback Rattlesnake", rec.Name)

	// Neither must "yellow" alone.
	rec, err = Match("thin yellow snake in the garden", "Texas")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Eastern Diamondback Rattlesnake", rec.Name)
}

func TestMatchIsTotalForNonEmptyInput(t *testing.T) {
	t.Parallel()

	rec, err := Match("no color words at all", "somewhere")
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestMatchIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Match("brown snake near the porch", "Georgia")
	require.NoError(t, err)
	second, err := Match("brown snake near the porch", "Georgia")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatchRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Match("", "Florida")
	assert.Error(t, err)

	_, err = Match("   ", "Florida")
	assert.Error(t, err)

	_, err = Match("black snake", "")
	assert.Error(t, err)
}
