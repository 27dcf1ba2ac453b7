// Package analyze holds the per-entity-type suggestion plugins. One analyzer
// exists per source type that can plausibly spawn other records; sink types
// resolve to no analyzer at all. Analyzers never let a failure escape their
// boundary: credentials missing, malformed completions and partial data all
// degrade into AnalysisResult.Errors.
package analyze

import (
	"context"
	"fmt"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// Analyzer inspects one entity and proposes suggestions. Implementations
// must always return a result, never panic, and fold failures into
// result.Errors.
type Analyzer interface {
	Analyze(ctx context.Context, db store.DataAccess, entityID uint) *model.AnalysisResult
}

// Confidence bands, fixed by design so reviewers can triage by score:
// a receipt is near-certain mechanical proof, line-item classification is a
// heuristic, intent-based signals are softer still.
const (
	ConfidenceReceiptTransaction = 0.95
	ConfidenceInventoryCandidate = 0.75
	ConfidenceReimbursement      = 0.65
	ConfidenceIntentTransaction  = 0.70
)

const noCredentialError = "no language model credential configured; analysis skipped"

// sinkTypes never originate suggestions; they are only ever link targets.
var sinkTypes = map[model.EntityType]bool{
	model.EntityInventoryItem: true,
	model.EntityNews:          true,
	model.EntityFAQ:           true,
	model.EntityEvent:         true,
	model.EntityMailMessage:   true,
	model.EntityPoll:          true,
	model.EntityFundBudget:    true,
}

// Registry resolves analyzers by entity type.
type Registry struct {
	analyzers map[model.EntityType]Analyzer
}

// NewRegistry wires every analyzer and checks at startup that each declared
// entity type is either covered or an explicit sink, so the dispatch table
// cannot silently drift from the type enumeration.
func NewRegistry(client llm.LLMClient, prompts config.AnalysisPrompts) (*Registry, error) {
	r := &Registry{
		analyzers: map[model.EntityType]Analyzer{
			model.EntityReceipt:       &ReceiptAnalyzer{LLM: client, Prompts: prompts},
			model.EntityReimbursement: &ReimbursementAnalyzer{LLM: client, Prompts: prompts},
			model.EntityTransaction:   &TransactionAnalyzer{LLM: client, Prompts: prompts},
			model.EntityMinute:        &MinuteAnalyzer{LLM: client, Prompts: prompts},
		},
	}

	for _, t := range model.AllEntityTypes() {
		_, covered := r.analyzers[t]
		if !covered && !sinkTypes[t] {
			return nil, fmt.Errorf("entity type %q has neither an analyzer nor a sink declaration", t)
		}
		if covered && sinkTypes[t] {
			return nil, fmt.Errorf("entity type %q is declared both analyzable and sink", t)
		}
	}
	return r, nil
}

// Lookup returns the analyzer for a type. Sink types return (nil, false),
// which callers treat as "nothing to analyze", not an error.
func (r *Registry) Lookup(t model.EntityType) (Analyzer, bool) {
	a, ok := r.analyzers[t]
	return a, ok
}

// hasLinkOfType reports whether any relationship of source points at an
// entity of type t. Analyzers use it to defer to records that already exist.
func hasLinkOfType(rels []model.Relationship, source model.EntityRef, t model.EntityType) bool {
	for _, rel := range rels {
		if rel.Other(source).Type == t {
			return true
		}
	}
	return false
}

func clampConfidence(c, fallback float64) float64 {
	if c <= 0 {
		return fallback
	}
	if c > 1 {
		return 1
	}
	return c
}
