package snakenet

import (
	"context"
	"log/slog"
	"strings"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/errors"
	"github.com/snakesafe/snakeid-go/internal/logging"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// Classifier produces ranked label predictions for an encoded image. SnakeNet
// satisfies this; tests substitute a fake.
type Classifier interface {
	Classify(ctx context.Context, imageData []byte) ([]Prediction, error)
}

// Result is the outcome of an identification attempt. A nil Record means the
// image was judged to not contain a snake. Degraded is set when the
// classifier failed and the fallback policy selected a conservative record
// instead of propagating the error.
type Result struct {
	Record      *species.Record `json:"record"`
	Predictions []Prediction    `json:"predictions,omitempty"`
	Degraded    bool            `json:"degraded"`
}

// labelRule maps a label substring to a canonical catalog name. Rules are
// evaluated in table order; the first hit wins.
type labelRule struct {
	keyword   string
	canonical string
}

// labelSynonyms resolves classifier vocabulary directly to catalog names.
// More specific keywords come before the generic ones they contain, so
// "king cobra" must precede "cobra".
var labelSynonyms = []labelRule{
	{"rattlesnake", "Eastern Diamondback Rattlesnake"},
	{"diamondback", "Eastern Diamondback Rattlesnake"},
	{"crotalus", "Eastern Diamondback Rattlesnake"},
	{"king cobra", "King Cobra"},
	{"ophiophagus", "King Cobra"},
	{"cobra", "King Cobra"},
	{"naja", "King Cobra"},
	{"black mamba", "Black Mamba"},
	{"dendroaspis", "Black Mamba"},
	{"mamba", "Black Mamba"},
	{"garter snake", "Common Garter Snake"},
	{"garden snake", "Common Garter Snake"},
	{"thamnophis", "Common Garter Snake"},
}

// snakeKeywords gate the feature heuristics: at least one must occur in the
// combined top labels before the image is treated as containing a snake.
var snakeKeywords = []string{
	"snake", "reptile", "serpent", "viper", "python", "boa",
	"constrictor", "cobra", "mamba", "rattlesnake", "venom",
	"poisonous", "scales", "slither", "fang",
}

// featureRules map visual feature vocabulary in a label to a canonical name.
// Any listed keyword fires the rule. Evaluated per label in table order.
var featureRules = []struct {
	keywords  []string
	canonical string
}{
	{[]string{"pattern", "spotted", "diamond"}, "Eastern Diamondback Rattlesnake"},
	{[]string{"black", "dark"}, "Black Mamba"},
	{[]string{"hood", "standing"}, "King Cobra"},
	{[]string{"stripe", "green", "thin"}, "Common Garter Snake"},
}

// How many top predictions each cascade stage inspects.
const (
	directMatchDepth  = 5
	featureMatchDepth = 3
)

// Matcher resolves classifier predictions to catalog records through a
// layered cascade: direct label synonyms first, then feature heuristics
// gated on snake vocabulary, then a conservative fallback.
type Matcher struct {
	classifier Classifier
	onError    string
	logger     *slog.Logger
}

// NewMatcher returns a Matcher using the given classifier and the error
// policy from settings.
func NewMatcher(classifier Classifier, settings *conf.Settings) *Matcher {
	onError := conf.ClassifierErrorFallback
	if settings != nil && settings.SnakeNet.OnClassifierError != "" {
		onError = settings.SnakeNet.OnClassifierError
	}
	return &Matcher{
		classifier: classifier,
		onError:    onError,
		logger:     logging.ForService("snakenet"),
	}
}

// Identify classifies the image and resolves the predictions against the
// given catalog. The catalog must be non-empty; its first record doubles as
// the conservative fallback when a snake is detected but no rule resolves a
// species, and when the classifier itself fails under the fallback policy.
func (m *Matcher) Identify(ctx context.Context, imageData []byte, catalog []species.Record) (*Result, error) {
	if len(catalog) == 0 {
		return nil, errors.Newf("catalog must not be empty").
			Component("snakenet").
			Category(errors.CategoryValidation).
			Build()
	}

	predictions, err := m.classifier.Classify(ctx, imageData)
	if err != nil {
		if m.onError == conf.ClassifierErrorPropagate {
			return nil, errors.New(err).
				Component("snakenet").
				Category(errors.CategoryClassify).
				Build()
		}
		// Degraded mode: classification is unavailable, so assume the worst
		// and surface the conservative record with its safety information.
		if m.logger != nil {
			m.logger.Warn("classifier failed, returning conservative fallback",
				"error", err,
				"fallback", catalog[0].Name)
		}
		return &Result{Record: &catalog[0], Degraded: true}, nil
	}

	if len(predictions) == 0 {
		return &Result{Record: nil, Predictions: predictions}, nil
	}

	record := resolve(predictions, catalog)
	return &Result{Record: record, Predictions: predictions}, nil
}

// resolve walks the cascade over ranked predictions. Returns nil when no
// snake vocabulary is present in any returned label.
func resolve(predictions []Prediction, catalog []species.Record) *species.Record {
	top := predictions
	if len(top) > directMatchDepth {
		top = top[:directMatchDepth]
	}

	// Stage 1: direct match over the top labels, synonyms first, then
	// containment of a catalog record's own name or scientific name.
	for i := range top {
		label := strings.ToLower(top[i].Label)
		for _, rule := range labelSynonyms {
			if strings.Contains(label, rule.keyword) {
				if rec := findInCatalog(catalog, rule.canonical); rec != nil {
					return rec
				}
			}
		}
		for j := range catalog {
			if strings.Contains(label, strings.ToLower(catalog[j].Name)) ||
				strings.Contains(label, strings.ToLower(catalog[j].ScientificName)) {
				return &catalog[j]
			}
		}
	}

	// Stage 2: require snake vocabulary somewhere in the full label list
	// before applying the looser feature heuristics. Only the direct and
	// feature stages are depth-limited.
	combined := strings.ToLower(joinLabels(predictions))
	if !containsAny(combined, snakeKeywords) {
		return nil
	}

	depth := len(top)
	if depth > featureMatchDepth {
		depth = featureMatchDepth
	}
	for i := 0; i < depth; i++ {
		label := strings.ToLower(top[i].Label)
		for _, rule := range featureRules {
			if containsAny(label, rule.keywords) {
				return findInCatalog(catalog, rule.canonical)
			}
		}
	}

	// Stage 3: a snake was detected but nothing resolved a species. Fall
	// back to the first catalog record so safety guidance errs toward
	// caution.
	return &catalog[0]
}

// findInCatalog returns the record with the given display name, or nil.
func findInCatalog(catalog []species.Record, name string) *species.Record {
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, name) {
			return &catalog[i]
		}
	}
	return nil
}

func joinLabels(predictions []Prediction) string {
	labels := make([]string, 0, len(predictions))
	for i := range predictions {
		labels = append(labels, predictions[i].Label)
	}
	return strings.Join(labels, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
