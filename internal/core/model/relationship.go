package model

import "time"

// Relationship is a stored link between two entities. Rows are written with a
// fixed A/B orientation but always queried symmetrically: a lookup for either
// endpoint finds the row. Deleting an endpoint entity never cascades here, so
// a relationship may outlive one of its sides.
type Relationship struct {
	ID        uint       `json:"id"`
	AType     EntityType `json:"relation_a_type"`
	AID       uint       `json:"relation_a_id"`
	BType     EntityType `json:"relation_b_type"`
	BID       uint       `json:"relation_b_id"`
	CreatedBy uint       `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// Involves reports whether ref appears on either side.
func (r Relationship) Involves(ref EntityRef) bool {
	if r.AType == ref.Type && r.AID == ref.ID {
		return true
	}
	return r.BType == ref.Type && r.BID == ref.ID
}

// Other returns the endpoint opposite to ref. When ref appears on neither
// side the B endpoint is returned, so callers should check Involves first if
// the relationship's provenance is uncertain.
func (r Relationship) Other(ref EntityRef) EntityRef {
	if r.AType == ref.Type && r.AID == ref.ID {
		return EntityRef{Type: r.BType, ID: r.BID}
	}
	return EntityRef{Type: r.AType, ID: r.AID}
}
