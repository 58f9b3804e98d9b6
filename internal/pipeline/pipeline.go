// Package pipeline implements the batch transaction designation pipeline:
// hashtag extraction from memos, heuristic bill and cross-ledger transfer
// detection, date-proximity trip clustering, and per-trip summaries.
//
// The pipeline is a pure, synchronous, in-memory transform. It performs no
// I/O, keeps no state between invocations, and never mutates its input; each
// entry point returns freshly built records. Invocations over disjoint
// batches are safe to run concurrently without coordination.
package pipeline

import (
	"fmt"
	"time"
)

// Pipeline applies tagging and trip identification to batches of ledger
// transactions. The only configuration it carries is the reference timezone
// used for every date computation, fixed at construction.
type Pipeline struct {
	loc *time.Location
}

// NewPipeline builds a pipeline with loc as the reference timezone. A nil loc
// falls back to UTC.
func NewPipeline(loc *time.Location) *Pipeline {
	if loc == nil {
		loc = time.UTC
	}
	return &Pipeline{loc: loc}
}

// Default builds a pipeline in the deployment-wide default timezone.
func Default() (*Pipeline, error) {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Default: loading timezone %q: %w", DefaultTimezone, err)
	}
	return NewPipeline(loc), nil
}

// ClassifyAndTag applies automatic bill/transfer tagging to every transaction
// and attaches the derived hashtag fields. Transfer detection runs against the
// original input set, so the order of augmentation never changes a verdict.
// Returns a *ValidationError for the first record with a malformed date.
func (p *Pipeline) ClassifyAndTag(transactions []Transaction) ([]Transaction, error) {
	dated, err := validateBatch(transactions, p.loc)
	if err != nil {
		return nil, err
	}
	tagged := classifyBatch(dated)
	out := make([]Transaction, len(tagged))
	for i := range tagged {
		out[i] = tagged[i].Transaction
	}
	return out, nil
}

// ClusterTrips runs the full pipeline: tagging, eligibility filtering,
// date-proximity grouping, and trip naming. Every input transaction comes back
// annotated, in input order; transactions belonging to no trip keep a nil
// tripName. Bills and transfer-tagged transactions are excluded from
// clustering by default.
func (p *Pipeline) ClusterTrips(transactions []Transaction, settings Settings) ([]Transaction, error) {
	return p.ClusterTripsWith(transactions, settings, ShouldIncludeInTrip)
}

// ClusterTripsWith is ClusterTrips with a caller-supplied inclusion predicate
// replacing the default.
func (p *Pipeline) ClusterTripsWith(transactions []Transaction, settings Settings, include IncludeFunc) ([]Transaction, error) {
	if settings.MaxDaysBetween < 0 {
		return nil, fmt.Errorf("ClusterTrips: maxDaysBetween must be non-negative, got %d", settings.MaxDaysBetween)
	}
	if include == nil {
		include = ShouldIncludeInTrip
	}

	state := &clusterState{
		settings: settings,
		include:  include,
		pipe:     p,
		input:    transactions,
	}
	for i, step := range newClusterSteps() {
		if err := step.execute(state); err != nil {
			return nil, fmt.Errorf("cluster step %d: %w", i+1, err)
		}
	}
	return state.result, nil
}
