package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilderMetadata(t *testing.T) {
	t.Parallel()

	base := fmt.Errorf("model file missing")
	err := New(base).
		Component("snakenet").
		Category(CategoryModelLoad).
		Context("model_path", "/models/snakenet.tflite").
		Build()

	assert.Equal(t, "model file missing", err.Error())
	assert.Equal(t, "snakenet", err.GetComponent())
	assert.Equal(t, string(CategoryModelLoad), err.GetCategory())
	assert.Equal(t, "/models/snakenet.tflite", err.GetContext()["model_path"])
	assert.True(t, Is(err, base))
}

func TestErrorBuilderDefaultsToGenericCategory(t *testing.T) {
	t.Parallel()

	err := Newf("something went wrong").Build()
	assert.Equal(t, string(CategoryGeneric), err.GetCategory())
}

func TestWrapPreservesEnhancedMetadata(t *testing.T) {
	t.Parallel()

	inner := Newf("upstream returned 503").
		Component("geocoding").
		Category(CategoryNetwork).
		Context("status", 503).
		Build()

	outer := Wrap(inner).Context("attempt", 1).Build()

	assert.Equal(t, "geocoding", outer.GetComponent())
	assert.Equal(t, string(CategoryNetwork), outer.GetCategory())
	assert.Equal(t, 503, outer.GetContext()["status"])
	assert.Equal(t, 1, outer.GetContext()["attempt"])
}

func TestIsMatchesByCategory(t *testing.T) {
	t.Parallel()

	a := Newf("first").Category(CategoryGeocoding).Build()
	b := Newf("second").Category(CategoryGeocoding).Build()
	c := Newf("third").Category(CategoryValidation).Build()

	assert.True(t, Is(a, b))
	assert.False(t, Is(a, c))
}

func TestInvalidPriorityFallsBackToMedium(t *testing.T) {
	t.Parallel()

	err := Newf("boom").Priority("urgent!!").Build()
	assert.Equal(t, PriorityMedium, err.GetPriority())
}

func TestContextIsCopiedOnRead(t *testing.T) {
	t.Parallel()

	err := Newf("boom").Context("key", "value").Build()

	ctx := err.GetContext()
	require.NotNil(t, ctx)
	ctx["key"] = "mutated"

	assert.Equal(t, "value", err.GetContext()["key"])
}
