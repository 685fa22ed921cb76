package snakenet

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"sort"
	"time"

	"github.com/snakesafe/snakeid-go/internal/errors"
	tflite "github.com/tphakala/go-tflite"
)

// Classify runs the model on an encoded image and returns labels ranked by
// confidence, trimmed to the configured result count.
func (sn *SnakeNet) Classify(ctx context.Context, imageData []byte) ([]Prediction, error) {
	if len(imageData) == 0 {
		return nil, errors.Newf("image data is empty").
			Component("snakenet").
			Category(errors.CategoryValidation).
			Build()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	// locking to prevent concurrent access to the interpreter, the TFLite
	// interpreter is not safe for concurrent Invoke
	sn.mu.Lock()
	defer sn.mu.Unlock()

	inputTensor := sn.interpreter.GetInputTensor(0)
	if inputTensor == nil {
		return nil, fmt.Errorf("cannot get input tensor")
	}

	// Input shape is NHWC (1, height, width, 3); the model dictates the size
	// and the image is resampled to fit.
	height := inputTensor.Dim(1)
	width := inputTensor.Dim(2)

	sample, err := imageToTensor(imageData, width, height)
	if err != nil {
		return nil, errors.New(err).
			Component("snakenet").
			Category(errors.CategoryImageDecode).
			Context("image_size_bytes", len(imageData)).
			Build()
	}

	copy(inputTensor.Float32s(), sample)

	if status := sn.interpreter.Invoke(); status != tflite.OK {
		return nil, errors.Newf("tensor invoke failed: %v", status).
			Component("snakenet").
			Category(errors.CategoryClassify).
			Timing("inference", time.Since(start)).
			Build()
	}

	outputTensor := sn.interpreter.GetOutputTensor(0)
	predictions := extractPredictions(outputTensor)
	confidence := applySigmoidToPredictions(predictions, sn.Settings.SnakeNet.Sensitivity)

	results, err := pairLabelsAndConfidence(sn.Labels, confidence)
	if err != nil {
		return nil, errors.New(err).
			Component("snakenet").
			Category(errors.CategoryClassify).
			Build()
	}

	sortResults(results)

	sn.Debug("classified image in %v, top label %q", time.Since(start), topLabel(results))

	return trimResultsToMax(results, sn.Settings.SnakeNet.TopResults), nil
}

// imageToTensor decodes an encoded image and returns a float32 slice laid out
// in NHWC order with shape (1, height, width, 3), values normalized to 0-1.
// Images are resampled to the requested size with nearest-neighbor sampling.
func imageToTensor(data []byte, width, height int) ([]float32, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid tensor size %dx%d", width, height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("image has zero size")
	}

	out := make([]float32, 1*height*width*3)

	// iterate rows (y) then columns (x) so memory layout matches NHWC
	for y := 0; y < height; y++ {
		srcY := bounds.Min.Y + y*srcH/height
		for x := 0; x < width; x++ {
			srcX := bounds.Min.X + x*srcW/width
			r32, g32, b32, _ := img.At(srcX, srcY).RGBA()

			base := ((y * width) + x) * 3
			// Convert 16-bit color to 8-bit, then normalize
			out[base+0] = float32(r32>>8) / 255.0
			out[base+1] = float32(g32>>8) / 255.0
			out[base+2] = float32(b32>>8) / 255.0
		}
	}

	return out, nil
}

// customSigmoid applies a sigmoid function with sensitivity adjustment to a value.
func customSigmoid(x, sensitivity float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sensitivity*x))
}

// extractPredictions extracts prediction results from a TensorFlow Lite tensor.
func extractPredictions(tensor *tflite.Tensor) []float32 {
	predSize := tensor.Dim(tensor.NumDims() - 1)
	predictions := make([]float32, predSize)
	copy(predictions, tensor.Float32s())
	return predictions
}

// applySigmoidToPredictions applies the sigmoid function to a slice of predictions.
func applySigmoidToPredictions(predictions []float32, sensitivity float64) []float32 {
	confidence := make([]float32, len(predictions))
	for i, pred := range predictions {
		confidence[i] = float32(customSigmoid(float64(pred), sensitivity))
	}
	return confidence
}

// pairLabelsAndConfidence pairs labels with their corresponding confidence values.
func pairLabelsAndConfidence(labels []string, confidence []float32) ([]Prediction, error) {
	if len(labels) != len(confidence) {
		return nil, fmt.Errorf("mismatched labels and predictions lengths: %d vs %d", len(labels), len(confidence))
	}

	results := make([]Prediction, 0, len(labels))
	for i, label := range labels {
		results = append(results, Prediction{Label: label, Score: confidence[i]})
	}
	return results, nil
}

// sortResults sorts predictions by their confidence in descending order.
func sortResults(results []Prediction) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

// trimResultsToMax trims the results to a maximum specified count.
func trimResultsToMax(results []Prediction, maxResults int) []Prediction {
	if maxResults > 0 && len(results) > maxResults {
		return results[:maxResults]
	}
	return results
}

func topLabel(results []Prediction) string {
	if len(results) == 0 {
		return ""
	}
	return results[0].Label
}
