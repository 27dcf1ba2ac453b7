package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

// ListEntities returns summaries of every record of the given type,
// newest first. This feeds the loader's "available" candidate pool.
func (s *Store) ListEntities(ctx context.Context, t model.EntityType) ([]model.EntitySummary, error) {
	switch t {
	case model.EntityReceipt:
		return listSummaries[ReceiptModel](ctx, s.db, t, func(m ReceiptModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityTransaction:
		return listSummaries[TransactionModel](ctx, s.db, t, func(m TransactionModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Description, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityReimbursement:
		return listSummaries[ReimbursementModel](ctx, s.db, t, func(m ReimbursementModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Description, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityInventoryItem:
		return listSummaries[InventoryItemModel](ctx, s.db, t, func(m InventoryItemModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityMinute:
		return listSummaries[MinuteModel](ctx, s.db, t, func(m MinuteModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityNews:
		return listSummaries[NewsItemModel](ctx, s.db, t, func(m NewsItemModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Title, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityFAQ:
		return listSummaries[FAQEntryModel](ctx, s.db, t, func(m FAQEntryModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Question, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityEvent:
		return listSummaries[EventModel](ctx, s.db, t, func(m EventModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityMailMessage:
		return listSummaries[MailMessageModel](ctx, s.db, t, func(m MailMessageModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Subject, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityPoll:
		return listSummaries[PollModel](ctx, s.db, t, func(m PollModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Question, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	case model.EntityFundBudget:
		return listSummaries[FundBudgetModel](ctx, s.db, t, func(m FundBudgetModel) model.EntitySummary {
			return model.EntitySummary{ID: m.ID, Type: t, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}
		})
	default:
		return nil, fmt.Errorf("unknown entity type %q", t)
	}
}

func listSummaries[M any](ctx context.Context, db *gorm.DB, t model.EntityType, toSummary func(M) model.EntitySummary) ([]model.EntitySummary, error) {
	rows := make([]M, 0)
	if err := db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]model.EntitySummary, 0, len(rows))
	for _, m := range rows {
		result = append(result, toSummary(m))
	}
	return result, nil
}

// GetEntity resolves a single record to its summary view. Missing records
// return ErrNotFound; a dangling relationship endpoint is tolerable and the
// loader simply drops it from its listing.
func (s *Store) GetEntity(ctx context.Context, ref model.EntityRef) (model.EntitySummary, error) {
	// Listing one table and scanning would be wasteful; instead reuse the
	// typed queries through a per-type First lookup.
	summaries, err := s.getEntityByID(ctx, ref)
	if err != nil {
		return model.EntitySummary{}, err
	}
	return summaries, nil
}

func (s *Store) getEntityByID(ctx context.Context, ref model.EntityRef) (model.EntitySummary, error) {
	wrap := func(name, status string, createdAt time.Time, err error) (model.EntitySummary, error) {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.EntitySummary{}, fmt.Errorf("%s %d: %w", ref.Type, ref.ID, ErrNotFound)
		}
		if err != nil {
			return model.EntitySummary{}, err
		}
		return model.EntitySummary{ID: ref.ID, Type: ref.Type, Name: name, Status: status, CreatedAt: createdAt}, nil
	}

	switch ref.Type {
	case model.EntityReceipt:
		var m ReceiptModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Name, m.Status, m.CreatedAt, err)
	case model.EntityTransaction:
		var m TransactionModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Description, m.Status, m.CreatedAt, err)
	case model.EntityReimbursement:
		var m ReimbursementModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Description, m.Status, m.CreatedAt, err)
	case model.EntityInventoryItem:
		var m InventoryItemModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Name, m.Status, m.CreatedAt, err)
	case model.EntityMinute:
		var m MinuteModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Name, m.Status, m.CreatedAt, err)
	case model.EntityNews:
		var m NewsItemModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Title, m.Status, m.CreatedAt, err)
	case model.EntityFAQ:
		var m FAQEntryModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Question, m.Status, m.CreatedAt, err)
	case model.EntityEvent:
		var m EventModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Name, m.Status, m.CreatedAt, err)
	case model.EntityMailMessage:
		var m MailMessageModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Subject, m.Status, m.CreatedAt, err)
	case model.EntityPoll:
		var m PollModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Question, m.Status, m.CreatedAt, err)
	case model.EntityFundBudget:
		var m FundBudgetModel
		err := s.db.WithContext(ctx).First(&m, ref.ID).Error
		return wrap(m.Name, m.Status, m.CreatedAt, err)
	default:
		return model.EntitySummary{}, fmt.Errorf("unknown entity type %q", ref.Type)
	}
}

func (s *Store) GetReceipt(ctx context.Context, id uint) (model.Receipt, error) {
	var m ReceiptModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Receipt{}, fmt.Errorf("receipt %d: %w", id, ErrNotFound)
		}
		return model.Receipt{}, err
	}
	return model.Receipt{
		ID: m.ID, Name: m.Name, Status: m.Status, Amount: m.Amount,
		Date: m.Date, Items: m.Items, CreatedBy: m.CreatedBy, CreatedAt: m.CreatedAt,
	}, nil
}

func (s *Store) GetTransaction(ctx context.Context, id uint) (model.Transaction, error) {
	var m TransactionModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
		}
		return model.Transaction{}, err
	}
	return model.Transaction{
		ID: m.ID, Description: m.Description, Status: m.Status, Amount: m.Amount,
		Category: m.Category, Date: m.Date, CreatedAt: m.CreatedAt,
	}, nil
}

func (s *Store) GetReimbursement(ctx context.Context, id uint) (model.Reimbursement, error) {
	var m ReimbursementModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Reimbursement{}, fmt.Errorf("reimbursement %d: %w", id, ErrNotFound)
		}
		return model.Reimbursement{}, err
	}
	return model.Reimbursement{
		ID: m.ID, Description: m.Description, Status: m.Status, Amount: m.Amount,
		Recipient: m.Recipient, CreatedBy: m.CreatedBy, CreatedAt: m.CreatedAt,
	}, nil
}

func (s *Store) GetMinute(ctx context.Context, id uint) (model.Minute, error) {
	var m MinuteModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Minute{}, fmt.Errorf("minute %d: %w", id, ErrNotFound)
		}
		return model.Minute{}, err
	}
	return model.Minute{
		ID: m.ID, Name: m.Name, Status: m.Status, Content: m.Content,
		MeetingDate: m.MeetingDate, CreatedAt: m.CreatedAt,
	}, nil
}

func (s *Store) GetFundBudgetsByYear(ctx context.Context, year int) ([]model.FundBudget, error) {
	rows := make([]FundBudgetModel, 0)
	if err := s.db.WithContext(ctx).Where("year = ?", year).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]model.FundBudget, 0, len(rows))
	for _, m := range rows {
		result = append(result, model.FundBudget{
			ID: m.ID, Name: m.Name, Status: m.Status, Year: m.Year,
			Amount: m.Amount, CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}

// Draft creation. Every suggestible type gets one method; all records start
// with status "draft" and leave it only through the auto-publish machine.

func (s *Store) CreateTransactionDraft(ctx context.Context, d model.TransactionDraft) (model.EntitySummary, error) {
	date := time.Now().UTC()
	if d.Date != "" {
		if parsed, err := time.Parse("2006-01-02", d.Date); err == nil {
			date = parsed
		}
	}
	m := TransactionModel{
		Description: d.Description,
		Status:      model.StatusDraft,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        date,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.EntitySummary{}, err
	}
	return model.EntitySummary{ID: m.ID, Type: model.EntityTransaction, Name: m.Description, Status: m.Status, CreatedAt: m.CreatedAt}, nil
}

func (s *Store) CreateInventoryItemDraft(ctx context.Context, d model.InventoryItemDraft) (model.EntitySummary, error) {
	quantity := d.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	m := InventoryItemModel{
		Name:     d.Name,
		Status:   model.StatusDraft,
		Location: d.Location,
		Quantity: quantity,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.EntitySummary{}, err
	}
	return model.EntitySummary{ID: m.ID, Type: model.EntityInventoryItem, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}, nil
}

func (s *Store) CreateReimbursementDraft(ctx context.Context, d model.ReimbursementDraft, createdBy uint) (model.EntitySummary, error) {
	m := ReimbursementModel{
		Description: d.Description,
		Status:      model.StatusDraft,
		Amount:      d.Amount,
		Recipient:   d.Recipient,
		CreatedBy:   createdBy,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.EntitySummary{}, err
	}
	return model.EntitySummary{ID: m.ID, Type: model.EntityReimbursement, Name: m.Description, Status: m.Status, CreatedAt: m.CreatedAt}, nil
}

func (s *Store) CreateNewsDraft(ctx context.Context, d model.NewsDraft) (model.EntitySummary, error) {
	m := NewsItemModel{
		Title:   d.Title,
		Status:  model.StatusDraft,
		Content: d.Content,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.EntitySummary{}, err
	}
	return model.EntitySummary{ID: m.ID, Type: model.EntityNews, Name: m.Title, Status: m.Status, CreatedAt: m.CreatedAt}, nil
}

func (s *Store) CreateFAQDraft(ctx context.Context, d model.FAQDraft) (model.EntitySummary, error) {
	m := FAQEntryModel{
		Question: d.Question,
		Status:   model.StatusDraft,
		Answer:   d.Answer,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.EntitySummary{}, err
	}
	return model.EntitySummary{ID: m.ID, Type: model.EntityFAQ, Name: m.Question, Status: m.Status, CreatedAt: m.CreatedAt}, nil
}
