// Package engine wires the per-module calculators into full batch
// recomputes. Every mutation of a module's entry list triggers a complete
// re-reduce of that module: entries in, results plus totals plus provenance
// metadata out. There is no incremental diffing; entry counts are tens to
// low hundreds per module and a full pass is O(entries) and deterministic.
//
// The engine holds no mutable state of its own. The caller owns the entry
// arrays and serializes mutations before invoking a recompute.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// Metadata records the provenance of a recompute so downstream exports can
// cite the factor snapshot verbatim.
type Metadata struct {
	CalculatedAt           time.Time `json:"calculatedAt"`
	EmissionFactorsVersion string    `json:"emissionFactorsVersion"`
	Source                 string    `json:"source"`
}

// EntryError reports one entry that failed to calculate. Failed entries are
// skipped so a single malformed entry never blocks the rest of the batch.
type EntryError struct {
	EntryID string `json:"entryId"`
	Error   string `json:"error"`
}

// Engine runs batch recomputes for every module.
type Engine struct {
	logger zerolog.Logger
}

// New returns an Engine that logs skipped entries through the given logger.
func New(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger}
}

func (e *Engine) metadata(source string) Metadata {
	return Metadata{
		CalculatedAt:           time.Now().UTC(),
		EmissionFactorsVersion: refdata.Version,
		Source:                 source,
	}
}

// runBatch calculates every entry, skipping and recording failures.
func runBatch[E any, R any](
	e *Engine,
	module string,
	entries []E,
	entryID func(E) string,
	calcFn func(E) (R, error),
) ([]R, []EntryError) {
	results := make([]R, 0, len(entries))
	var errs []EntryError

	for _, entry := range entries {
		result, err := calcFn(entry)
		if err != nil {
			e.logger.Warn().
				Str("module", module).
				Str("entry_id", entryID(entry)).
				Err(err).
				Msg("entry skipped")
			errs = append(errs, EntryError{EntryID: entryID(entry), Error: err.Error()})
			continue
		}
		results = append(results, result)
	}

	return results, errs
}

// newEntryID returns a fresh entry identifier for entries stored without
// one.
func newEntryID() string {
	return uuid.NewString()
}
