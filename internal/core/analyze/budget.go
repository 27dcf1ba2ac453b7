package analyze

import (
	"context"
	"fmt"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/common"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

type budgetMatch struct {
	Budget string `json:"budget"`
}

// matchBudgetTag asks the model which of the year's fund budgets an expense
// belongs to and returns it as an enrichment tag ("budget:<name>"). Budget
// linkage is communicated through tags only, never as a created entity.
// Returns ("", "") when no budgets exist or none fits; the second value is a
// non-empty error string on failure.
func matchBudgetTag(ctx context.Context, db store.DataAccess, client llm.LLMClient, promptTemplate, description string, year int) (string, string) {
	budgets, err := db.GetFundBudgetsByYear(ctx, year)
	if err != nil {
		return "", fmt.Sprintf("failed to load %d budgets: %v", year, err)
	}
	if len(budgets) == 0 {
		return "", ""
	}

	names := map[string]bool{}
	budgetLines := ""
	for _, b := range budgets {
		names[b.Name] = true
		budgetLines += fmt.Sprintf("%s (%.2f EUR)\n", b.Name, b.Amount)
	}

	prompt := fmt.Sprintf(promptTemplate, description, budgetLines)
	response, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Sprintf("budget match request failed: %v", err)
	}

	match, err := common.ParseJSON[budgetMatch](response)
	if err != nil {
		return "", fmt.Sprintf("unparseable budget match completion: %v", err)
	}
	if match.Budget == "" || !names[match.Budget] {
		// Hallucinated or absent budget names are dropped silently.
		return "", ""
	}
	return "budget:" + match.Budget, ""
}

func appendTag(result *model.AnalysisResult, tag string) {
	if tag == "" {
		return
	}
	if result.Enrichment == nil {
		result.Enrichment = &model.Enrichment{}
	}
	result.Enrichment.Tags = append(result.Enrichment.Tags, tag)
}
