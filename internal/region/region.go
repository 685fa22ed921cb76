// Package region maps coarse country codes to the subset of the species
// catalog relevant for that area.
package region

import (
	"log/slog"
	"strings"

	"github.com/snakesafe/snakeid-go/internal/logging"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// DefaultKey is the bucket returned for countries without specific data.
const DefaultKey = "default"

// buckets lists catalog display names per region key. Names are resolved
// against the canonical catalog at init so the records themselves live in one
// place. Order is display order, not significance ranking.
var buckets = map[string][]string{
	// United States
	"us": {
		"Eastern Diamondback Rattlesnake",
		"Western Diamondback Rattlesnake",
		"Timber Rattlesnake",
		"Copperhead",
		"Eastern Coral Snake",
	},
	// India
	"in": {
		"Indian Cobra",
		"Russell's Viper",
		"Common Krait",
		"Saw-scaled Viper",
		"King Cobra",
	},
	// Australia
	"au": {
		"Eastern Brown Snake",
		"Inland Taipan",
		"Tiger Snake",
		"Common Death Adder",
	},
	// Fallback for regions without specific data
	DefaultKey: {
		"Common Garter Snake",
		"Ball Python",
	},
}

var index map[string][]species.Record

var logger *slog.Logger

func init() {
	index = make(map[string][]species.Record, len(buckets))
	for key, names := range buckets {
		records := make([]species.Record, 0, len(names))
		for _, name := range names {
			rec := species.ByName(name)
			if rec == nil {
				// A bucket referencing a name missing from the catalog is a
				// programming error; fail loudly at startup.
				panic("region: bucket " + key + " references unknown species " + name)
			}
			records = append(records, *rec)
		}
		index[key] = records
	}
}

func getLogger() *slog.Logger {
	if logger == nil {
		logger = logging.ForService("region")
	}
	return logger
}

// Species returns the species subset for the given country code. The lookup
// is total: unknown, empty, or unmapped codes fall back to the default
// bucket, so the result is never empty. Country matching is case-insensitive.
//
// The state parameter is accepted for future sub-national refinement but does
// not affect selection yet.
func Species(country, state string) []species.Record {
	key := strings.ToLower(strings.TrimSpace(country))

	if records, ok := index[key]; ok {
		return records
	}

	if log := getLogger(); log != nil {
		log.Debug("no regional data for country, using default bucket",
			"country", country,
			"state", state)
	}
	return index[DefaultKey]
}

// Keys returns the known region keys, including the default bucket.
func Keys() []string {
	keys := make([]string, 0, len(index))
	for key := range index {
		keys = append(keys, key)
	}
	return keys
}
