package model

import "time"

// EntityType identifies one of the portal's business record types.
type EntityType string

const (
	EntityReceipt       EntityType = "receipt"
	EntityTransaction   EntityType = "transaction"
	EntityReimbursement EntityType = "reimbursement"
	EntityInventoryItem EntityType = "inventory_item"
	EntityMinute        EntityType = "minute"
	EntityNews          EntityType = "news"
	EntityFAQ           EntityType = "faq"
	EntityEvent         EntityType = "event"
	EntityMailMessage   EntityType = "mail_message"
	EntityPoll          EntityType = "poll"
	EntityFundBudget    EntityType = "fund_budget"
)

// Entity lifecycle statuses. Each type uses "draft" plus a subset of the
// published statuses.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusComplete  = "complete"
	StatusPublished = "published"
)

// AllEntityTypes lists every declared entity type. Registry validation and
// route parsing are checked against this list.
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityReceipt,
		EntityTransaction,
		EntityReimbursement,
		EntityInventoryItem,
		EntityMinute,
		EntityNews,
		EntityFAQ,
		EntityEvent,
		EntityMailMessage,
		EntityPoll,
		EntityFundBudget,
	}
}

// ParseEntityType validates a type string coming from a route or form.
func ParseEntityType(s string) (EntityType, bool) {
	for _, t := range AllEntityTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// EntityRef points at one business record by type and id.
type EntityRef struct {
	Type EntityType `json:"type"`
	ID   uint       `json:"id"`
}

// EntitySummary is the type-agnostic view of a record used by the
// relationship loader and the HTTP API. Name carries the record's name,
// title, description or question depending on the type.
type EntitySummary struct {
	ID        uint       `json:"id"`
	Type      EntityType `json:"type"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// Ref returns the summary's identity.
func (s EntitySummary) Ref() EntityRef {
	return EntityRef{Type: s.Type, ID: s.ID}
}

// Receipt is a scanned proof of purchase. Items holds the OCR'd line items
// as a JSON array; individual rows may be malformed and are decoded
// defensively by the receipt analyzer.
type Receipt struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Items     string    `json:"items"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ReceiptItem is one OCR'd line of a receipt.
type ReceiptItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Transaction struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Reimbursement struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	Recipient   string    `json:"recipient"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type InventoryItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Minute is the written record of one committee meeting.
type Minute struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Content     string    `json:"content"`
	MeetingDate time.Time `json:"meeting_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewsItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type FAQEntry struct {
	ID        uint      `json:"id"`
	Question  string    `json:"question"`
	Status    string    `json:"status"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// FundBudget is a yearly spending envelope. Budgets are link targets and
// enrichment-tag material only; no analyzer ever creates one.
type FundBudget struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Year      int       `json:"year"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
