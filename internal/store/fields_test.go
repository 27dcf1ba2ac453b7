package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/draft"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

func TestGetEntityFieldsNormalizesDatetimeColumns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	event := EventModel{Name: "Yard party", Status: model.StatusDraft, Location: "courtyard"}
	require.NoError(t, s.db.Create(&event).Error)

	fields, err := s.GetEntityFields(ctx, model.EntityRef{Type: model.EntityEvent, ID: event.ID})
	require.NoError(t, err)

	startsAt, ok := fields["starts_at"].(time.Time)
	require.True(t, ok, "starts_at must come back as time.Time, got %T", fields["starts_at"])
	assert.True(t, startsAt.IsZero())
}

func TestUnscheduledEventStaysDraftAfterFieldRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	event := EventModel{Name: "Yard party", Status: model.StatusDraft, Location: "courtyard"}
	require.NoError(t, s.db.Create(&event).Error)
	ref := model.EntityRef{Type: model.EntityEvent, ID: event.ID}

	fields, err := s.GetEntityFields(ctx, ref)
	require.NoError(t, err)
	_, promote := draft.Decide(model.EntityEvent, model.StatusDraft, fields)
	assert.False(t, promote, "zero starts_at must keep the event a draft")

	// Scheduling the event completes the draft.
	require.NoError(t, s.UpdateEntityFields(ctx, ref, map[string]any{
		"starts_at": time.Date(2026, 9, 5, 15, 0, 0, 0, time.UTC),
	}))
	fields, err = s.GetEntityFields(ctx, ref)
	require.NoError(t, err)
	status, promote := draft.Decide(model.EntityEvent, model.StatusDraft, fields)
	assert.True(t, promote)
	assert.Equal(t, model.StatusActive, status)
}
