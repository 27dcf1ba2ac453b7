package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

func TestDraftCreationStartsInDraftStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTransactionDraft(ctx, model.TransactionDraft{
		Description: "Sauna stove repair",
		Amount:      120,
		Category:    "maintenance",
		Date:        "2026-08-12",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, created.Status)
	assert.Equal(t, model.EntityTransaction, created.Type)
	assert.NotZero(t, created.ID)

	tx, err := s.GetTransaction(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sauna stove repair", tx.Description)
	assert.Equal(t, 2026, tx.Date.Year())
}

func TestListEntitiesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateNewsDraft(ctx, model.NewsDraft{Title: "Laundry room closed", Content: "..."})
	require.NoError(t, err)
	second, err := s.CreateNewsDraft(ctx, model.NewsDraft{Title: "New sauna shifts", Content: "..."})
	require.NoError(t, err)

	list, err := s.ListEntities(ctx, model.EntityNews)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestGetEntityNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetEntity(context.Background(), model.EntityRef{Type: model.EntityPoll, ID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFundBudgetsByYear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.db.Create(&FundBudgetModel{Name: "Maintenance", Status: model.StatusActive, Year: 2026, Amount: 2000}).Error)
	require.NoError(t, s.db.Create(&FundBudgetModel{Name: "Events", Status: model.StatusActive, Year: 2025, Amount: 500}).Error)

	budgets, err := s.GetFundBudgetsByYear(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "Maintenance", budgets[0].Name)
}

func TestUpdateEntityFieldsRespectsWhitelist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateFAQDraft(ctx, model.FAQDraft{Question: "When is the sauna open?"})
	require.NoError(t, err)
	ref := model.EntityRef{Type: model.EntityFAQ, ID: created.ID}

	err = s.UpdateEntityFields(ctx, ref, map[string]any{
		"answer": "Daily from 6 to 9 pm.",
		"status": model.StatusPublished, // not editable through field updates
	})
	require.NoError(t, err)

	fields, err := s.GetEntityFields(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "Daily from 6 to 9 pm.", fields["answer"])
	assert.Equal(t, model.StatusDraft, fields["status"])
}
