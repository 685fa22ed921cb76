// Package species defines the snake species catalog and threat level taxonomy.
package species

import (
	"fmt"
	"strings"
)

// ThreatLevel is the ordinal severity classification for a species' danger to
// humans. Levels are ordered: Safe < Mild < Moderate < Dangerous < Deadly.
type ThreatLevel int

const (
	ThreatSafe ThreatLevel = iota
	ThreatMild
	ThreatModerate
	ThreatDangerous
	ThreatDeadly
)

// threatLabels maps each threat level to its display label. The mapping is
// bijective: no two levels share a label.
var threatLabels = map[ThreatLevel]string{
	ThreatSafe:      "safe",
	ThreatMild:      "mild",
	ThreatModerate:  "moderate",
	ThreatDangerous: "dangerous",
	ThreatDeadly:    "deadly",
}

// String returns the display label for the threat level.
func (t ThreatLevel) String() string {
	if label, ok := threatLabels[t]; ok {
		return label
	}
	return "unknown"
}

// IsDangerousToHumans reports whether the level warrants showing emergency
// precautions.
func (t ThreatLevel) IsDangerousToHumans() bool {
	return t != ThreatSafe
}

// MarshalText implements encoding.TextMarshaler so threat levels serialize as
// their labels in JSON and YAML.
func (t ThreatLevel) MarshalText() ([]byte, error) {
	label, ok := threatLabels[t]
	if !ok {
		return nil, fmt.Errorf("unknown threat level %d", int(t))
	}
	return []byte(label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ThreatLevel) UnmarshalText(text []byte) error {
	level, err := ParseThreatLevel(string(text))
	if err != nil {
		return err
	}
	*t = level
	return nil
}

// ParseThreatLevel converts a label back to its threat level.
func ParseThreatLevel(label string) (ThreatLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for level, l := range threatLabels {
		if l == normalized {
			return level, nil
		}
	}
	return ThreatSafe, fmt.Errorf("unknown threat level label %q", label)
}

// Record holds all safety information for a single snake species. Records are
// immutable catalog constants, defined at process start and never mutated.
type Record struct {
	Name           string      `json:"name"`
	ScientificName string      `json:"scientific_name"`
	ImageURL       string      `json:"image_url"`
	VenomType      string      `json:"venom_type"`
	Antidote       string      `json:"antidote"`
	Precautions    []string    `json:"precautions,omitempty"`
	ThreatLevel    ThreatLevel `json:"threat_level"`
	Description    string      `json:"description"`
	Distribution   string      `json:"distribution"`
}

// Catalog returns the full species catalog in display order. The first entry
// doubles as the conservative fallback when an image is judged to contain a
// snake that cannot be narrowed to a species.
func Catalog() []Record {
	return catalog
}

// ByName returns the catalog record with the given display name, or nil if
// the name is unknown. Matching is case-insensitive.
func ByName(name string) *Record {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range catalog {
		if strings.ToLower(catalog[i].Name) == needle {
			return &catalog[i]
		}
	}
	return nil
}

// ByScientificName returns the catalog record with the given binomial name,
// or nil if unknown. Matching is case-insensitive.
func ByScientificName(name string) *Record {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range catalog {
		if strings.ToLower(catalog[i].ScientificName) == needle {
			return &catalog[i]
		}
	}
	return nil
}
