package store

import (
	"context"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

// DataAccess is the repository capability the relationship loader/saver,
// analyzers and suggestion pipeline are written against. *Store is the
// sqlite-backed implementation; tests may substitute their own.
type DataAccess interface {
	// Relationship records.
	GetEntityRelationships(ctx context.Context, ref model.EntityRef) ([]model.Relationship, error)
	CreateEntityRelationship(ctx context.Context, a, b model.EntityRef, createdBy uint) (model.Relationship, error)
	EntityRelationshipExists(ctx context.Context, a, b model.EntityRef) (bool, error)
	DeleteEntityRelationship(ctx context.Context, id uint) error

	// App settings, single-row upserts.
	GetAppSetting(ctx context.Context, key string) (string, error)
	SetAppSetting(ctx context.Context, key, value string) error

	// Type-agnostic record views.
	ListEntities(ctx context.Context, t model.EntityType) ([]model.EntitySummary, error)
	GetEntity(ctx context.Context, ref model.EntityRef) (model.EntitySummary, error)

	// Typed getters the analyzers need.
	GetReceipt(ctx context.Context, id uint) (model.Receipt, error)
	GetTransaction(ctx context.Context, id uint) (model.Transaction, error)
	GetReimbursement(ctx context.Context, id uint) (model.Reimbursement, error)
	GetMinute(ctx context.Context, id uint) (model.Minute, error)
	GetFundBudgetsByYear(ctx context.Context, year int) ([]model.FundBudget, error)

	// Draft creation, one method per suggestible type. Each returns the
	// created record's summary with status "draft".
	CreateTransactionDraft(ctx context.Context, d model.TransactionDraft) (model.EntitySummary, error)
	CreateInventoryItemDraft(ctx context.Context, d model.InventoryItemDraft) (model.EntitySummary, error)
	CreateReimbursementDraft(ctx context.Context, d model.ReimbursementDraft, createdBy uint) (model.EntitySummary, error)
	CreateNewsDraft(ctx context.Context, d model.NewsDraft) (model.EntitySummary, error)
	CreateFAQDraft(ctx context.Context, d model.FAQDraft) (model.EntitySummary, error)
}
