package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

func TestMatches(t *testing.T) {
	assert.True(t, Matches("treasury:receipts:write", "treasury:receipts:write"))
	assert.True(t, Matches("treasury:receipts:*", "treasury:receipts:write"))
	assert.True(t, Matches("treasury:*", "treasury:receipts:read"))
	assert.True(t, Matches("*", "anything:at:all"))

	assert.False(t, Matches("treasury:receipts:read", "treasury:receipts:write"))
	assert.False(t, Matches("treasury:receipts:*", "inventory:items:read"))
	assert.False(t, Matches("", "treasury:receipts:read"))
	// The wildcard only matches as a suffix of the grant.
	assert.False(t, Matches("*:receipts:write", "treasury:receipts:write"))
}

func TestAllowedFailsClosed(t *testing.T) {
	assert.False(t, Allowed(nil, "treasury:receipts:read"))
	assert.False(t, Allowed([]string{}, "treasury:receipts:read"))
	assert.True(t, Allowed([]string{"content:news:read", "treasury:*"}, "treasury:receipts:read"))
}

func TestEntityTypePermissionNames(t *testing.T) {
	assert.Equal(t, "treasury:receipts:read", ReadName(model.EntityReceipt))
	assert.Equal(t, "treasury:receipts:write", WriteName(model.EntityReceipt))

	grants := []string{"treasury:receipts:*"}
	assert.True(t, CanRead(grants, model.EntityReceipt))
	assert.True(t, CanWrite(grants, model.EntityReceipt))
	assert.False(t, CanRead(grants, model.EntityNews))
}
