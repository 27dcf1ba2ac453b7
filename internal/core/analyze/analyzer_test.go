package analyze

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "analyze_test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	return store.New(db), db
}

func testPrompts() config.AnalysisPrompts {
	return config.Default().Analysis
}

func seedDate() time.Time {
	return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
}

func TestRegistryCoversEveryEntityType(t *testing.T) {
	r, err := NewRegistry(&MockLLMClient{}, testPrompts())
	require.NoError(t, err)

	for _, et := range model.AllEntityTypes() {
		_, ok := r.Lookup(et)
		assert.Equal(t, !sinkTypes[et], ok, "type %s", et)
	}
}

func TestRegistrySinkTypesHaveNoAnalyzer(t *testing.T) {
	r, err := NewRegistry(nil, testPrompts())
	require.NoError(t, err)

	for _, sink := range []model.EntityType{
		model.EntityInventoryItem,
		model.EntityNews,
		model.EntityFAQ,
		model.EntityEvent,
		model.EntityMailMessage,
		model.EntityPoll,
		model.EntityFundBudget,
	} {
		_, ok := r.Lookup(sink)
		assert.False(t, ok, "sink %s must not resolve to an analyzer", sink)
	}
}

func TestAnalyzersDegradeWithoutCredential(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	receipt := store.ReceiptModel{Name: "receipt", Status: model.StatusActive, Amount: 10, Date: seedDate()}
	require.NoError(t, db.Create(&receipt).Error)

	a := &ReceiptAnalyzer{LLM: nil, Prompts: testPrompts()}
	result := a.Analyze(ctx, st, receipt.ID)
	require.NotNil(t, result)
	assert.Empty(t, result.Suggestions)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no language model credential")
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.6, clampConfidence(0, 0.6))
	assert.Equal(t, 0.6, clampConfidence(-2, 0.6))
	assert.Equal(t, 1.0, clampConfidence(7, 0.6))
	assert.Equal(t, 0.85, clampConfidence(0.85, 0.6))
}
