// Package suggest orchestrates the analyzer plugins: running one against an
// entity and materializing an accepted suggestion into a draft record plus a
// relationship back to its source.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/analyze"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// lastModelSetting records which model produced the portal's most recent
// analysis, for the admin settings page.
const lastModelSetting = "ai.last_model"

type Pipeline struct {
	DB       store.DataAccess
	Registry *analyze.Registry
	// Timeout bounds one analyzer run including its completion calls.
	// A timed-out run degrades into result errors like a missing
	// credential would; it never fails the request.
	Timeout time.Duration
	// ModelName is recorded in app settings after each run; empty skips
	// the write.
	ModelName string
	Log       *logrus.Logger
}

func NewPipeline(db store.DataAccess, registry *analyze.Registry, timeout time.Duration, modelName string, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
	}
	return &Pipeline{
		DB:        db,
		Registry:  registry,
		Timeout:   timeout,
		ModelName: modelName,
		Log:       log,
	}
}

// Analyze runs the source type's analyzer. Types without one (sink types)
// yield an empty result, not an error.
func (p *Pipeline) Analyze(ctx context.Context, source model.EntityRef) *model.AnalysisResult {
	analyzer, ok := p.Registry.Lookup(source.Type)
	if !ok {
		return &model.AnalysisResult{Suggestions: []model.EntitySuggestion{}}
	}

	runCtx := ctx
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	result := analyzer.Analyze(runCtx, p.DB, source.ID)

	if p.ModelName != "" {
		if err := p.DB.SetAppSetting(ctx, lastModelSetting, p.ModelName); err != nil {
			p.Log.WithError(err).Warn("failed to record last analysis model")
		}
	}
	return result
}

// Accept materializes one reviewed suggestion: a draft entity seeded from
// the typed payload, then a relationship from the source to the new record
// attributed to the accepting user. A failed link leaves the draft orphaned
// on purpose; it can be linked manually later and is cheaper to recover than
// a rolled-back acceptance.
func (p *Pipeline) Accept(ctx context.Context, source model.EntityRef, suggestion model.EntitySuggestion, actorID uint) (model.EntitySummary, error) {
	var created model.EntitySummary
	var err error

	switch data := suggestion.Data.(type) {
	case *model.TransactionDraft:
		created, err = p.DB.CreateTransactionDraft(ctx, *data)
	case *model.InventoryItemDraft:
		created, err = p.DB.CreateInventoryItemDraft(ctx, *data)
	case *model.ReimbursementDraft:
		created, err = p.DB.CreateReimbursementDraft(ctx, *data, actorID)
	case *model.NewsDraft:
		created, err = p.DB.CreateNewsDraft(ctx, *data)
	case *model.FAQDraft:
		created, err = p.DB.CreateFAQDraft(ctx, *data)
	default:
		return model.EntitySummary{}, fmt.Errorf("suggestion carries no creatable payload")
	}
	if err != nil {
		return model.EntitySummary{}, fmt.Errorf("failed to create %s draft: %w", suggestion.Type, err)
	}

	if _, err := p.DB.CreateEntityRelationship(ctx, source, created.Ref(), actorID); err != nil && !errors.Is(err, store.ErrDuplicateRelationship) {
		p.Log.WithFields(logrus.Fields{
			"source":  fmt.Sprintf("%s/%d", source.Type, source.ID),
			"created": fmt.Sprintf("%s/%d", created.Type, created.ID),
		}).WithError(err).Warn("accepted suggestion left an orphaned draft")
	}

	return created, nil
}
