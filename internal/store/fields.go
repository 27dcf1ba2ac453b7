package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

var tableNames = map[model.EntityType]string{
	model.EntityReceipt:       ReceiptModel{}.TableName(),
	model.EntityTransaction:   TransactionModel{}.TableName(),
	model.EntityReimbursement: ReimbursementModel{}.TableName(),
	model.EntityInventoryItem: InventoryItemModel{}.TableName(),
	model.EntityMinute:        MinuteModel{}.TableName(),
	model.EntityNews:          NewsItemModel{}.TableName(),
	model.EntityFAQ:           FAQEntryModel{}.TableName(),
	model.EntityEvent:         EventModel{}.TableName(),
	model.EntityMailMessage:   MailMessageModel{}.TableName(),
	model.EntityPoll:          PollModel{}.TableName(),
	model.EntityFundBudget:    FundBudgetModel{}.TableName(),
}

// editableColumns whitelists what a form edit may touch per type. Status is
// deliberately absent: it only changes through the auto-publish machine.
var editableColumns = map[model.EntityType][]string{
	model.EntityReceipt:       {"name", "amount", "date", "items"},
	model.EntityTransaction:   {"description", "amount", "category", "date"},
	model.EntityReimbursement: {"description", "amount", "recipient"},
	model.EntityInventoryItem: {"name", "location", "quantity"},
	model.EntityMinute:        {"name", "content", "meeting_date"},
	model.EntityNews:          {"title", "content"},
	model.EntityFAQ:           {"question", "answer"},
	model.EntityEvent:         {"name", "location", "starts_at"},
	model.EntityMailMessage:   {"subject", "body", "sender"},
	model.EntityPoll:          {"question", "closes_at"},
	model.EntityFundBudget:    {"name", "year", "amount"},
}

// datetimeColumns names every datetime column across the entity tables. The
// sqlite driver hands map scans these as RFC3339 strings, which would make a
// zero time look like a filled field to the auto-publish rule.
var datetimeColumns = map[string]bool{
	"date":         true,
	"meeting_date": true,
	"starts_at":    true,
	"closes_at":    true,
	"created_at":   true,
	"updated_at":   true,
}

// GetEntityFields returns the column values of one record as a map, for the
// auto-publish completeness check. Datetime columns are normalized back to
// time.Time so zero times read as unfilled.
func (s *Store) GetEntityFields(ctx context.Context, ref model.EntityRef) (map[string]any, error) {
	table, ok := tableNames[ref.Type]
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", ref.Type)
	}
	row := map[string]any{}
	err := s.db.WithContext(ctx).Table(table).Where("id = ?", ref.ID).Take(&row).Error
	if err != nil {
		return nil, err
	}
	for column, value := range row {
		if !datetimeColumns[column] {
			continue
		}
		if raw, ok := value.(string); ok {
			if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
				row[column] = parsed
			}
		}
	}
	return row, nil
}

// UpdateEntityFields applies a partial field update, silently dropping
// columns the type does not allow a form to edit.
func (s *Store) UpdateEntityFields(ctx context.Context, ref model.EntityRef, fields map[string]any) error {
	table, ok := tableNames[ref.Type]
	if !ok {
		return fmt.Errorf("unknown entity type %q", ref.Type)
	}

	allowed := map[string]bool{}
	for _, c := range editableColumns[ref.Type] {
		allowed[c] = true
	}
	updates := map[string]any{}
	for k, v := range fields {
		if allowed[k] {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Table(table).Where("id = ?", ref.ID).Updates(updates).Error
}

// SetEntityStatus writes the record's status column. Only the auto-publish
// machine and seeding use this.
func (s *Store) SetEntityStatus(ctx context.Context, ref model.EntityRef, status string) error {
	table, ok := tableNames[ref.Type]
	if !ok {
		return fmt.Errorf("unknown entity type %q", ref.Type)
	}
	return s.db.WithContext(ctx).Table(table).Where("id = ?", ref.ID).Update("status", status).Error
}
