// Package describe matches free-text snake descriptions against the species
// catalog using a deterministic keyword rule table.
package describe

import (
	"strings"

	"github.com/snakesafe/snakeid-go/internal/errors"
	"github.com/snakesafe/snakeid-go/internal/species"
)

// rule maps a keyword conjunction to a catalog record. All keywords must be
// present (case-insensitive substring test) for the rule to fire.
type rule struct {
	keywords []string
	result   string
}

// rules is evaluated top to bottom; the first rule whose conjunction holds
// wins. The final catch-all rule keeps the matcher total: any non-empty
// description resolves to some record.
//
// This is a placeholder policy, not a real classifier. The conjunction rule
// captures the coral snake's signature banding; everything else resolves to
// the most commonly reported dangerous species.
var rules = []rule{
	{keywords: []string{"yellow", "black"}, result: "Eastern Coral Snake"},
	{keywords: nil, result: "Eastern Diamondback Rattlesnake"},
}

// Match returns the catalog record matching a free-text description. The
// location label is required alongside the description but does not currently
// influence selection. Both inputs must be non-empty after trimming; empty
// input is a validation error that callers are expected to reject up front.
func Match(description, location string) (*species.Record, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.Newf("description must not be empty").
			Component("describe").
			Category(errors.CategoryValidation).
			Build()
	}
	if strings.TrimSpace(location) == "" {
		return nil, errors.Newf("location must not be empty").
			Component("describe").
			Category(errors.CategoryValidation).
			Build()
	}

	normalized := strings.ToLower(description)
	for _, r := range rules {
		if conjunctionHolds(normalized, r.keywords) {
			rec := species.ByName(r.result)
			if rec == nil {
				return nil, errors.Newf("rule result %q not in catalog", r.result).
					Component("describe").
					Category(errors.CategoryNotFound).
					Build()
			}
			return rec, nil
		}
	}

	// Unreachable as long as the rule table ends with a catch-all.
	return nil, errors.Newf("no rule matched description").
		Component("describe").
		Category(errors.CategoryGeneric).
		Build()
}

// conjunctionHolds reports whether every keyword occurs in the description.
// An empty keyword list always holds.
func conjunctionHolds(description string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(description, kw) {
			return false
		}
	}
	return true
}
