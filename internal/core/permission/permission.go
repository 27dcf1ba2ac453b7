// Package permission implements the wildcard grant matching the portal's
// auth layer hands down. Grants look like "treasury:receipts:write",
// "treasury:receipts:*" or the universal "*"; evaluation of who holds which
// grants happens elsewhere.
package permission

import (
	"strings"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

// Matches reports whether a single grant covers the permission name.
// A trailing "*" in the grant matches any suffix after the shared prefix.
func Matches(grant, name string) bool {
	if grant == "*" {
		return true
	}
	if grant == name {
		return true
	}
	if strings.HasSuffix(grant, "*") {
		return strings.HasPrefix(name, strings.TrimSuffix(grant, "*"))
	}
	return false
}

// Allowed reports whether any grant in the list covers the permission name.
// A nil or empty grant list allows nothing (fail closed).
func Allowed(grants []string, name string) bool {
	for _, g := range grants {
		if Matches(g, name) {
			return true
		}
	}
	return false
}

// domains maps entity types to the permission namespace their records live
// under. Permission names are "<domain>:<action>".
var domains = map[model.EntityType]string{
	model.EntityReceipt:       "treasury:receipts",
	model.EntityTransaction:   "treasury:transactions",
	model.EntityReimbursement: "treasury:reimbursements",
	model.EntityFundBudget:    "treasury:budgets",
	model.EntityInventoryItem: "inventory:items",
	model.EntityMinute:        "meetings:minutes",
	model.EntityNews:          "content:news",
	model.EntityFAQ:           "content:faq",
	model.EntityEvent:         "events:events",
	model.EntityMailMessage:   "mail:messages",
	model.EntityPoll:          "polls:polls",
}

// ReadName returns the permission name guarding reads of the given type.
func ReadName(t model.EntityType) string {
	return domains[t] + ":read"
}

// WriteName returns the permission name guarding writes of the given type.
func WriteName(t model.EntityType) string {
	return domains[t] + ":write"
}

// CanRead reports whether the grant list allows reading records of type t.
func CanRead(grants []string, t model.EntityType) bool {
	return Allowed(grants, ReadName(t))
}

// CanWrite reports whether the grant list allows writing records of type t.
func CanWrite(grants []string, t model.EntityType) bool {
	return Allowed(grants, WriteName(t))
}
