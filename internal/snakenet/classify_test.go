package snakenet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageToTensorShapeAndRange(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 128, B: 0, A: 255})
		}
	}

	tensor, err := imageToTensor(encodePNG(t, img), 2, 2)
	require.NoError(t, err)
	require.Len(t, tensor, 2*2*3)

	for i := 0; i < len(tensor); i += 3 {
		assert.InDelta(t, 1.0, tensor[i+0], 1e-6)
		assert.InDelta(t, 128.0/255.0, tensor[i+1], 1e-6)
		assert.InDelta(t, 0.0, tensor[i+2], 1e-6)
	}
}

func TestImageToTensorResamples(t *testing.T) {
	t.Parallel()

	// A 1x1 image must stretch to fill any requested tensor size.
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	tensor, err := imageToTensor(encodePNG(t, img), 8, 8)
	require.NoError(t, err)
	require.Len(t, tensor, 8*8*3)
	for _, v := range tensor {
		assert.InDelta(t, 1.0, v, 1e-6)
	}
}

func TestImageToTensorRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := imageToTensor([]byte("not an image"), 8, 8)
	assert.Error(t, err)
}

func TestCustomSigmoid(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, customSigmoid(0, 1.0), 1e-9)
	assert.Greater(t, customSigmoid(2, 1.0), customSigmoid(1, 1.0))
	// Higher sensitivity steepens the curve.
	assert.Greater(t, customSigmoid(1, 1.5), customSigmoid(1, 0.5))
}

func TestPairLabelsAndConfidenceLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := pairLabelsAndConfidence([]string{"a", "b"}, []float32{0.1})
	assert.Error(t, err)
}

func TestSortAndTrimResults(t *testing.T) {
	t.Parallel()

	results := []Prediction{
		{Label: "low", Score: 0.1},
		{Label: "high", Score: 0.9},
		{Label: "mid", Score: 0.5},
	}
	sortResults(results)
	assert.Equal(t, "high", results[0].Label)
	assert.Equal(t, "low", results[2].Label)

	trimmed := trimResultsToMax(results, 2)
	assert.Len(t, trimmed, 2)
	assert.Len(t, trimResultsToMax(results, 10), 3)
}

func TestGetClassifierCachesFailureUntilReset(t *testing.T) {
	ResetForTesting()
	t.Cleanup(ResetForTesting)

	settings := conf.GetDefaultSettings()
	settings.SnakeNet.ModelPath = "testdata/does-not-exist.tflite"

	_, err := GetClassifier(settings)
	require.Error(t, err)

	// The failed result is cached; a second call must not re-initialize.
	_, err2 := GetClassifier(settings)
	assert.Equal(t, err, err2)

	ResetForTesting()
	_, err3 := GetClassifier(settings)
	assert.Error(t, err3)
}
