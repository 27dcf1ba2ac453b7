package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/common"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// ReceiptAnalyzer is the highest-priority source: a receipt is physical
// proof of purchase, so its transaction suggestion is near-certain and other
// analyzers defer to links it has already spawned.
type ReceiptAnalyzer struct {
	LLM     llm.LLMClient
	Prompts config.AnalysisPrompts
}

type classifiedItem struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Durable bool    `json:"durable"`
}

type receiptClassification struct {
	Category  string           `json:"category"`
	Personal  bool             `json:"personal"`
	Items     []classifiedItem `json:"items"`
	Reasoning string           `json:"reasoning"`
}

func (a *ReceiptAnalyzer) Analyze(ctx context.Context, db store.DataAccess, entityID uint) *model.AnalysisResult {
	receipt, err := db.GetReceipt(ctx, entityID)
	if err != nil {
		return model.ErrorResult("failed to load receipt %d: %v", entityID, err)
	}
	if a.LLM == nil {
		return model.ErrorResult(noCredentialError)
	}

	source := model.EntityRef{Type: model.EntityReceipt, ID: receipt.ID}
	rels, err := db.GetEntityRelationships(ctx, source)
	if err != nil {
		return model.ErrorResult("failed to load relationships: %v", err)
	}
	hasTransaction := hasLinkOfType(rels, source, model.EntityTransaction)
	hasReimbursement := hasLinkOfType(rels, source, model.EntityReimbursement)

	result := &model.AnalysisResult{Suggestions: []model.EntitySuggestion{}}

	items, itemErrors := decodeReceiptItems(receipt.Items)
	result.Errors = append(result.Errors, itemErrors...)

	itemLines := ""
	for _, it := range items {
		itemLines += fmt.Sprintf("%s (%.2f)\n", it.Name, it.Price)
	}

	prompt := fmt.Sprintf(a.Prompts.Receipt, receipt.Name, receipt.Amount, itemLines)
	response, err := a.LLM.Generate(ctx, prompt)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("completion request failed: %v", err))
		return result
	}

	cls, err := common.ParseJSON[receiptClassification](response)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unparseable completion: %v", err))
		return result
	}

	result.Enrichment = &model.Enrichment{Category: cls.Category}

	if !hasTransaction {
		result.Suggestions = append(result.Suggestions, model.EntitySuggestion{
			ID:   uuid.NewString(),
			Type: model.EntityTransaction,
			Name: "Transaction for " + receipt.Name,
			Data: &model.TransactionDraft{
				Description: receipt.Name,
				Amount:      receipt.Amount,
				Category:    cls.Category,
				Date:        receipt.Date.Format("2006-01-02"),
			},
			Confidence: ConfidenceReceiptTransaction,
			Reasoning:  "The receipt is direct proof of a payment with this amount.",
		})
	}

	for _, it := range cls.Items {
		if !it.Durable {
			continue
		}
		result.Suggestions = append(result.Suggestions, model.EntitySuggestion{
			ID:   uuid.NewString(),
			Type: model.EntityInventoryItem,
			Name: it.Name,
			Data: &model.InventoryItemDraft{
				Name:     it.Name,
				Quantity: 1,
			},
			Confidence: ConfidenceInventoryCandidate,
			Reasoning:  fmt.Sprintf("Line item %q looks like a durable good that belongs in the inventory.", it.Name),
			Metadata:   map[string]any{"price": it.Price},
		})
	}

	if !hasReimbursement && !cls.Personal {
		reasoning := cls.Reasoning
		if reasoning == "" {
			reasoning = "The purchase looks like a committee expense paid out of pocket."
		}
		result.Suggestions = append(result.Suggestions, model.EntitySuggestion{
			ID:   uuid.NewString(),
			Type: model.EntityReimbursement,
			Name: "Reimbursement for " + receipt.Name,
			Data: &model.ReimbursementDraft{
				Description: receipt.Name,
				Amount:      receipt.Amount,
			},
			Confidence: ConfidenceReimbursement,
			Reasoning:  reasoning,
		})
	}

	return result
}

// decodeReceiptItems parses the receipt's OCR line-item JSON defensively.
// One corrupted row costs an error entry, not the whole analysis.
func decodeReceiptItems(raw string) ([]model.ReceiptItem, []string) {
	if raw == "" {
		return nil, nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, []string{fmt.Sprintf("receipt items are not a JSON array: %v", err)}
	}

	var items []model.ReceiptItem
	var errs []string
	for i, row := range rows {
		var item model.ReceiptItem
		if err := json.Unmarshal(row, &item); err != nil {
			errs = append(errs, fmt.Sprintf("line item %d is malformed: %v", i+1, err))
			continue
		}
		items = append(items, item)
	}
	return items, errs
}
