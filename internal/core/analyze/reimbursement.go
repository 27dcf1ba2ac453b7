package analyze

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/common"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// ReimbursementAnalyzer works from user intent, a softer signal than a
// receipt. It defers on transaction creation whenever a receipt is linked:
// the receipt analyzer owns that suggestion, and acting on both would
// duplicate the transaction.
type ReimbursementAnalyzer struct {
	LLM     llm.LLMClient
	Prompts config.AnalysisPrompts
}

type reimbursementIntent struct {
	CreateTransaction bool   `json:"create_transaction"`
	Category          string `json:"category"`
	Reasoning         string `json:"reasoning"`
}

func (a *ReimbursementAnalyzer) Analyze(ctx context.Context, db store.DataAccess, entityID uint) *model.AnalysisResult {
	reimbursement, err := db.GetReimbursement(ctx, entityID)
	if err != nil {
		return model.ErrorResult("failed to load reimbursement %d: %v", entityID, err)
	}
	if a.LLM == nil {
		return model.ErrorResult(noCredentialError)
	}

	source := model.EntityRef{Type: model.EntityReimbursement, ID: reimbursement.ID}
	rels, err := db.GetEntityRelationships(ctx, source)
	if err != nil {
		return model.ErrorResult("failed to load relationships: %v", err)
	}
	hasReceipt := hasLinkOfType(rels, source, model.EntityReceipt)
	hasTransaction := hasLinkOfType(rels, source, model.EntityTransaction)

	result := &model.AnalysisResult{Suggestions: []model.EntitySuggestion{}}

	tag, tagErr := matchBudgetTag(ctx, db, a.LLM, a.Prompts.BudgetMatch, reimbursement.Description, reimbursement.CreatedAt.Year())
	if tagErr != "" {
		result.Errors = append(result.Errors, tagErr)
	}
	appendTag(result, tag)

	if hasReceipt || hasTransaction {
		// A linked receipt means the higher-priority analyzer owns the
		// transaction; a linked transaction means there is nothing left
		// to suggest.
		return result
	}

	prompt := fmt.Sprintf(a.Prompts.Reimbursement, reimbursement.Description, reimbursement.Amount)
	response, err := a.LLM.Generate(ctx, prompt)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("completion request failed: %v", err))
		return result
	}

	intent, err := common.ParseJSON[reimbursementIntent](response)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unparseable completion: %v", err))
		return result
	}
	if !intent.CreateTransaction {
		return result
	}

	reasoning := intent.Reasoning
	if reasoning == "" {
		reasoning = "The reimbursement request describes a committee expense without a booked transaction."
	}
	result.Suggestions = append(result.Suggestions, model.EntitySuggestion{
		ID:   uuid.NewString(),
		Type: model.EntityTransaction,
		Name: "Transaction for " + reimbursement.Description,
		Data: &model.TransactionDraft{
			Description: reimbursement.Description,
			Amount:      reimbursement.Amount,
			Category:    intent.Category,
		},
		Confidence: ConfidenceIntentTransaction,
		Reasoning:  reasoning,
	})
	return result
}
