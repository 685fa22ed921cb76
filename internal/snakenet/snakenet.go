// snakenet.go SnakeNet model specific code
package snakenet

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/errors"
	"github.com/snakesafe/snakeid-go/internal/logging"
	tflite "github.com/tphakala/go-tflite"
	"github.com/tphakala/go-tflite/delegates/xnnpack"
)

// Prediction is a single ranked classification label with its confidence.
type Prediction struct {
	Label string  `json:"label"`
	Score float32 `json:"score"`
}

// SnakeNet wraps the TFLite image classification interpreter and its labels.
type SnakeNet struct {
	interpreter *tflite.Interpreter
	Settings    *conf.Settings
	Labels      []string
	mu          sync.Mutex // the interpreter is not safe for concurrent Invoke
	logger      *slog.Logger
}

// NewSnakeNet initializes a new SnakeNet instance with the given settings.
func NewSnakeNet(settings *conf.Settings) (*SnakeNet, error) {
	sn := &SnakeNet{
		Settings: settings,
		logger:   logging.ForService("snakenet"),
	}

	if err := sn.initializeModel(); err != nil {
		return nil, errors.New(fmt.Errorf("SnakeNet: failed to initialize model: %w", err)).
			Component("snakenet").
			Category(errors.CategoryModelInit).
			ModelContext(settings.SnakeNet.ModelPath, "").
			Build()
	}

	if err := sn.loadLabels(); err != nil {
		return nil, errors.New(fmt.Errorf("SnakeNet: failed to load labels: %w", err)).
			Component("snakenet").
			Category(errors.CategoryLabelLoad).
			Context("label_path", settings.SnakeNet.LabelPath).
			Build()
	}

	return sn, nil
}

// initializeModel loads and initializes the TFLite image classification model.
func (sn *SnakeNet) initializeModel() error {
	start := time.Now()

	modelData, err := os.ReadFile(sn.Settings.SnakeNet.ModelPath)
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryModelLoad).
			ModelContext(sn.Settings.SnakeNet.ModelPath, "").
			Timing("model-load", time.Since(start)).
			Build()
	}

	model := tflite.NewModel(modelData)
	if model == nil {
		return errors.Newf("cannot load TensorFlow Lite model").
			Category(errors.CategoryModelInit).
			ModelContext(sn.Settings.SnakeNet.ModelPath, "").
			Context("model_size_mb", len(modelData)/1024/1024).
			Build()
	}

	threads := sn.determineThreadCount(sn.Settings.SnakeNet.Threads)

	options := tflite.NewInterpreterOptions()

	// Try to use XNNPACK delegate if enabled in settings
	if sn.Settings.SnakeNet.UseXNNPACK {
		delegate := xnnpack.New(xnnpack.DelegateOptions{NumThreads: int32(max(1, threads-1))}) //nolint:gosec // G115: thread count bounded by CPU count, safe conversion
		if delegate == nil {
			if sn.logger != nil {
				sn.logger.Warn("Failed to create XNNPACK delegate, falling back to default CPU")
			}
			options.SetNumThread(threads)
		} else {
			options.AddDelegate(delegate)
			options.SetNumThread(1)
		}
	} else {
		options.SetNumThread(threads)
	}

	options.SetErrorReporter(func(msg string, userData any) {
		logging.Error("TFLite error", "message", msg)
	}, nil)

	sn.interpreter = tflite.NewInterpreter(model, options)
	if sn.interpreter == nil {
		return fmt.Errorf("cannot create interpreter")
	}
	if status := sn.interpreter.AllocateTensors(); status != tflite.OK {
		return fmt.Errorf("tensor allocation failed")
	}

	// The model data is no longer needed, TFLite keeps its own internal copy
	runtime.GC()

	if sn.logger != nil {
		sn.logger.Info("SnakeNet model initialized",
			"model", sn.Settings.SnakeNet.ModelPath,
			"threads", threads,
			"total_cpus", runtime.NumCPU())
	}
	return nil
}

// loadLabels reads the model label file, one label per line.
func (sn *SnakeNet) loadLabels() error {
	file, err := os.Open(sn.Settings.SnakeNet.LabelPath)
	if err != nil {
		return err
	}
	defer file.Close()

	sn.Labels = sn.Labels[:0]
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sn.Labels = append(sn.Labels, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(sn.Labels) == 0 {
		return fmt.Errorf("label file %s contains no labels", sn.Settings.SnakeNet.LabelPath)
	}
	return nil
}

// determineThreadCount returns the number of interpreter threads to use.
func (sn *SnakeNet) determineThreadCount(configured int) int {
	if configured > 0 && configured <= runtime.NumCPU() {
		return configured
	}
	return runtime.NumCPU()
}

// Debug logs a debug message when classifier debug is enabled.
func (sn *SnakeNet) Debug(format string, args ...any) {
	if sn.Settings.SnakeNet.Debug && sn.logger != nil {
		sn.logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Delete releases the interpreter resources.
func (sn *SnakeNet) Delete() {
	sn.mu.Lock()
	defer sn.mu.Unlock()
	if sn.interpreter != nil {
		sn.interpreter.Delete()
		sn.interpreter = nil
	}
}

// Process-wide classifier instance. Initialization happens at most once per
// process and the result, success or failure, is reused by all subsequent
// callers. The explicit guard (rather than sync.Once) lets tests reset the
// cell between runs.
var (
	classifierMu       sync.Mutex
	classifierInstance *SnakeNet
	classifierErr      error
	classifierDone     bool
)

// GetClassifier returns the shared classifier, initializing it on first use.
func GetClassifier(settings *conf.Settings) (*SnakeNet, error) {
	classifierMu.Lock()
	defer classifierMu.Unlock()

	if !classifierDone {
		classifierInstance, classifierErr = NewSnakeNet(settings)
		classifierDone = true
	}
	return classifierInstance, classifierErr
}

// ResetForTesting clears the shared classifier cell so the next
// GetClassifier call initializes a fresh instance.
func ResetForTesting() {
	classifierMu.Lock()
	defer classifierMu.Unlock()

	if classifierInstance != nil {
		classifierInstance.Delete()
	}
	classifierInstance = nil
	classifierErr = nil
	classifierDone = false
}
