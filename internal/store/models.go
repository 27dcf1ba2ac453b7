package store

import "time"

type EntityRelationshipModel struct {
	ID            uint   `gorm:"primaryKey"`
	RelationAType string `gorm:"not null;index:idx_rel_a"`
	RelationAID   uint   `gorm:"not null;index:idx_rel_a"`
	RelationBType string `gorm:"not null;index:idx_rel_b"`
	RelationBID   uint   `gorm:"not null;index:idx_rel_b"`
	// PairKey is the canonical form of the unordered endpoint pair. The
	// unique index closes the check-then-insert race between concurrent
	// link requests.
	PairKey   string `gorm:"not null;uniqueIndex"`
	CreatedBy uint   `gorm:"not null"`
	CreatedAt time.Time
}

func (EntityRelationshipModel) TableName() string { return "entity_relationships" }

type AppSettingModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (AppSettingModel) TableName() string { return "app_settings" }

type ReceiptModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	Amount    float64
	Date      time.Time
	Items     string `gorm:"type:text"`
	CreatedBy uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReceiptModel) TableName() string { return "receipts" }

type TransactionModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"not null"`
	Status      string `gorm:"not null;default:'draft'"`
	Amount      float64
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TransactionModel) TableName() string { return "transactions" }

type ReimbursementModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"not null"`
	Status      string `gorm:"not null;default:'draft'"`
	Amount      float64
	Recipient   string
	CreatedBy   uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ReimbursementModel) TableName() string { return "reimbursements" }

type InventoryItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	Location  string
	Quantity  int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (InventoryItemModel) TableName() string { return "inventory_items" }

type MinuteModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Status      string `gorm:"not null;default:'draft'"`
	Content     string `gorm:"type:text"`
	MeetingDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MinuteModel) TableName() string { return "minutes" }

type NewsItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NewsItemModel) TableName() string { return "news_items" }

type FAQEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	Answer    string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQEntryModel) TableName() string { return "faq_entries" }

type EventModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	Location  string
	StartsAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EventModel) TableName() string { return "events" }

type MailMessageModel struct {
	ID        uint   `gorm:"primaryKey"`
	Subject   string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	Body      string `gorm:"type:text"`
	Sender    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MailMessageModel) TableName() string { return "mail_messages" }

type PollModel struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"not null"`
	Status    string `gorm:"not null;default:'draft'"`
	ClosesAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PollModel) TableName() string { return "polls" }

type FundBudgetModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Status    string `gorm:"not null;default:'active'"`
	Year      int    `gorm:"not null;index"`
	Amount    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FundBudgetModel) TableName() string { return "fund_budgets" }
