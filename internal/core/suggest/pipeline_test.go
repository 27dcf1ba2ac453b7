package suggest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/analyze"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

func newTestPipeline(t *testing.T, mock *analyze.MockLLMClient) (*Pipeline, *store.Store, *gorm.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "suggest_test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	st := store.New(db)

	registry, err := analyze.NewRegistry(mock, config.Default().Analysis)
	require.NoError(t, err)

	return NewPipeline(st, registry, 5*time.Second, "test-model", nil), st, db
}

func TestAnalyzeSinkTypeYieldsEmptyResult(t *testing.T) {
	p, _, db := newTestPipeline(t, &analyze.MockLLMClient{})
	ctx := context.Background()

	news := store.NewsItemModel{Title: "Laundry room closed", Status: model.StatusPublished}
	require.NoError(t, db.Create(&news).Error)

	result := p.Analyze(ctx, model.EntityRef{Type: model.EntityNews, ID: news.ID})
	require.NotNil(t, result)
	assert.Empty(t, result.Suggestions)
	assert.Empty(t, result.Errors)
}

func TestAnalyzeRecordsLastModel(t *testing.T) {
	mock := &analyze.MockLLMClient{Response: `{"category":"maintenance","personal":false,"items":[],"reasoning":""}`}
	p, st, db := newTestPipeline(t, mock)
	ctx := context.Background()

	receipt := store.ReceiptModel{Name: "receipt", Status: model.StatusActive, Amount: 10, Date: time.Now().UTC()}
	require.NoError(t, db.Create(&receipt).Error)

	result := p.Analyze(ctx, model.EntityRef{Type: model.EntityReceipt, ID: receipt.ID})
	require.NotNil(t, result)

	value, err := st.GetAppSetting(ctx, "ai.last_model")
	require.NoError(t, err)
	assert.Equal(t, "test-model", value)
}

func TestAcceptCreatesDraftAndLink(t *testing.T) {
	p, st, db := newTestPipeline(t, &analyze.MockLLMClient{})
	ctx := context.Background()

	receipt := store.ReceiptModel{Name: "Hardware store receipt", Status: model.StatusActive, Amount: 43, Date: time.Now().UTC()}
	require.NoError(t, db.Create(&receipt).Error)
	source := model.EntityRef{Type: model.EntityReceipt, ID: receipt.ID}

	suggestion := model.EntitySuggestion{
		ID:   "s-1",
		Type: model.EntityTransaction,
		Name: "Transaction for Hardware store receipt",
		Data: &model.TransactionDraft{
			Description: "Hardware store receipt",
			Amount:      43,
			Category:    "maintenance",
			Date:        "2026-08-15",
		},
		Confidence: 0.95,
	}

	created, err := p.Accept(ctx, source, suggestion, 7)
	require.NoError(t, err)
	assert.Equal(t, model.EntityTransaction, created.Type)
	assert.Equal(t, model.StatusDraft, created.Status)

	rels, err := st.GetEntityRelationships(ctx, source)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, created.Ref(), rels[0].Other(source))
	assert.Equal(t, uint(7), rels[0].CreatedBy)
}

func TestAcceptDuplicateLinkIsNotAnError(t *testing.T) {
	p, st, db := newTestPipeline(t, &analyze.MockLLMClient{})
	ctx := context.Background()

	receipt := store.ReceiptModel{Name: "receipt", Status: model.StatusActive, Amount: 5, Date: time.Now().UTC()}
	require.NoError(t, db.Create(&receipt).Error)
	source := model.EntityRef{Type: model.EntityReceipt, ID: receipt.ID}

	suggestion := model.EntitySuggestion{
		Type: model.EntityInventoryItem,
		Name: "Drill",
		Data: &model.InventoryItemDraft{Name: "Drill", Quantity: 1},
	}
	created, err := p.Accept(ctx, source, suggestion, 1)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Accepting the same suggestion again creates a second draft; only the
	// second draft's link is new, the first record stays linked.
	again, err := p.Accept(ctx, source, suggestion, 1)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)

	rels, err := st.GetEntityRelationships(ctx, source)
	require.NoError(t, err)
	assert.Len(t, rels, 2)
}

func TestAcceptRejectsPayloadlessSuggestion(t *testing.T) {
	p, _, db := newTestPipeline(t, &analyze.MockLLMClient{})
	ctx := context.Background()

	receipt := store.ReceiptModel{Name: "receipt", Status: model.StatusActive, Date: time.Now().UTC()}
	require.NoError(t, db.Create(&receipt).Error)

	_, err := p.Accept(ctx, model.EntityRef{Type: model.EntityReceipt, ID: receipt.ID}, model.EntitySuggestion{Type: model.EntityTransaction}, 1)
	assert.Error(t, err)
}
