// Command seed fills a portal database with demo committee data and runs
// the relationship loader once so a fresh checkout has something to click
// through.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/relation"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "portal.db"
	}

	db, err := store.Open(path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	st := store.New(db)
	ctx := context.Background()

	receipt := store.ReceiptModel{
		Name:   "Hardware store receipt",
		Status: model.StatusActive,
		Amount: 43.0,
		Date:   time.Now().UTC(),
		Items:  `[{"name":"Drill","price":40},{"name":"Milk","price":3}]`,
	}
	transaction := store.TransactionModel{
		Description: "Sauna stove repair",
		Status:      model.StatusPending,
		Amount:      120.0,
		Category:    "maintenance",
		Date:        time.Now().UTC(),
	}
	minute := store.MinuteModel{
		Name:        "Committee meeting 2026-08",
		Status:      model.StatusPublished,
		Content:     "The committee decided to renovate the laundry room and agreed on new sauna shifts starting next month.",
		MeetingDate: time.Now().UTC(),
	}
	budget := store.FundBudgetModel{
		Name:   "Maintenance",
		Status: model.StatusActive,
		Year:   time.Now().Year(),
		Amount: 2000.0,
	}
	for _, row := range []any{&receipt, &transaction, &minute, &budget} {
		if err := db.Create(row).Error; err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
	}

	source := model.EntityRef{Type: model.EntityReceipt, ID: receipt.ID}
	diff := relation.Diff{
		Add: []model.EntityRef{{Type: model.EntityTransaction, ID: transaction.ID}},
	}
	if err := relation.Save(ctx, st, source, diff, 1, nil); err != nil {
		log.Fatalf("failed to link demo receipt: %v", err)
	}

	groups, err := relation.Load(ctx, st, source, []model.EntityType{model.EntityTransaction}, relation.LoadOptions{})
	if err != nil {
		log.Fatalf("failed to load relationships: %v", err)
	}
	g := groups[model.EntityTransaction]
	fmt.Printf("Seeded %s: receipt #%d linked to %d transaction(s), %d available\n",
		path, receipt.ID, len(g.Linked), len(g.Available))
}
