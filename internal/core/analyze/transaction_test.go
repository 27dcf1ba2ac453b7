package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

func TestTransactionAnalyzerOnlyTags(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	tx := store.TransactionModel{Description: "Sauna stove repair", Status: model.StatusComplete, Amount: 120, Date: seedDate()}
	require.NoError(t, db.Create(&tx).Error)
	require.NoError(t, db.Create(&store.FundBudgetModel{Name: "Maintenance", Status: model.StatusActive, Year: 2026, Amount: 2000}).Error)

	mock := &MockLLMClient{Response: `{"budget": "Maintenance"}`}
	a := &TransactionAnalyzer{LLM: mock, Prompts: testPrompts()}
	result := a.Analyze(ctx, st, tx.ID)

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Suggestions, "transactions never spawn entities")
	require.NotNil(t, result.Enrichment)
	assert.Equal(t, []string{"budget:Maintenance"}, result.Enrichment.Tags)
}

func TestTransactionAnalyzerNoBudgets(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	tx := store.TransactionModel{Description: "bank fee", Status: model.StatusComplete, Amount: 5, Date: seedDate()}
	require.NoError(t, db.Create(&tx).Error)

	a := &TransactionAnalyzer{LLM: &MockLLMClient{}, Prompts: testPrompts()}
	result := a.Analyze(ctx, st, tx.ID)

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Suggestions)
	assert.Nil(t, result.Enrichment)
}
