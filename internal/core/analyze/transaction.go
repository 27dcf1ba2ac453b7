package analyze

import (
	"context"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// TransactionAnalyzer is the lowest-priority source. Transactions are
// mechanical proof of payment and normally the target of links, so this
// analyzer never proposes new entities; it only tags the transaction with a
// matching fund budget.
type TransactionAnalyzer struct {
	LLM     llm.LLMClient
	Prompts config.AnalysisPrompts
}

func (a *TransactionAnalyzer) Analyze(ctx context.Context, db store.DataAccess, entityID uint) *model.AnalysisResult {
	transaction, err := db.GetTransaction(ctx, entityID)
	if err != nil {
		return model.ErrorResult("failed to load transaction %d: %v", entityID, err)
	}
	if a.LLM == nil {
		return model.ErrorResult(noCredentialError)
	}

	result := &model.AnalysisResult{Suggestions: []model.EntitySuggestion{}}
	tag, tagErr := matchBudgetTag(ctx, db, a.LLM, a.Prompts.BudgetMatch, transaction.Description, transaction.Date.Year())
	if tagErr != "" {
		result.Errors = append(result.Errors, tagErr)
	}
	appendTag(result, tag)
	return result
}
