// Package draft holds the auto-publish rule that promotes a draft record
// once its required fields are filled. The rule is a pure function; edit
// handlers call it after applying a field update and persist whatever it
// decides. Further lifecycle (approval, rejection) is owned elsewhere.
package draft

import (
	"strings"
	"time"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

// requiredForPublish names the columns that must be non-empty before a draft
// of each type may leave draft status.
var requiredForPublish = map[model.EntityType][]string{
	model.EntityReceipt:       {"name", "amount", "date"},
	model.EntityTransaction:   {"description", "amount", "category"},
	model.EntityReimbursement: {"description", "amount", "recipient"},
	model.EntityInventoryItem: {"name", "location"},
	model.EntityMinute:        {"name", "content", "meeting_date"},
	model.EntityNews:          {"title", "content"},
	model.EntityFAQ:           {"question", "answer"},
	model.EntityEvent:         {"name", "location", "starts_at"},
	model.EntityMailMessage:   {"subject", "body"},
	model.EntityPoll:          {"question", "closes_at"},
	model.EntityFundBudget:    {"name", "year", "amount"},
}

// publishedStatus is the status a completed draft transitions into,
// type-dependent: treasury records await approval, content goes live.
var publishedStatus = map[model.EntityType]string{
	model.EntityReceipt:       model.StatusActive,
	model.EntityTransaction:   model.StatusPending,
	model.EntityReimbursement: model.StatusPending,
	model.EntityInventoryItem: model.StatusActive,
	model.EntityMinute:        model.StatusPublished,
	model.EntityNews:          model.StatusPublished,
	model.EntityFAQ:           model.StatusPublished,
	model.EntityEvent:         model.StatusActive,
	model.EntityMailMessage:   model.StatusPending,
	model.EntityPoll:          model.StatusActive,
	model.EntityFundBudget:    model.StatusActive,
}

// Decide returns the status a record should transition to after an edit,
// or ok=false when no transition applies. Only drafts ever transition, and
// only when every required field is filled; the decision is pure and
// idempotent, so a record already promoted decides nothing on a second call.
func Decide(t model.EntityType, currentStatus string, fields map[string]any) (string, bool) {
	if currentStatus != model.StatusDraft {
		return "", false
	}
	required, ok := requiredForPublish[t]
	if !ok {
		return "", false
	}
	for _, column := range required {
		if isEmpty(fields[column]) {
			return "", false
		}
	}
	return publishedStatus[t], true
}

func isEmpty(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case int:
		return value == 0
	case int64:
		return value == 0
	case float64:
		return value == 0
	case time.Time:
		return value.IsZero()
	default:
		return false
	}
}
