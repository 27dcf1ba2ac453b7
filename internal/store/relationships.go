package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
)

// pairKey canonicalizes an unordered endpoint pair so that (A,B) and (B,A)
// map to the same key. Endpoints are ordered lexicographically by their
// "type/id" form.
func pairKey(a, b model.EntityRef) string {
	ka := fmt.Sprintf("%s/%d", a.Type, a.ID)
	kb := fmt.Sprintf("%s/%d", b.Type, b.ID)
	if ka > kb {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

// CreateEntityRelationship stores a link between a and b. The pre-check plus
// the unique index on pair_key together guarantee at most one row per
// unordered pair; a second writer losing the race gets
// ErrDuplicateRelationship just like one failing the pre-check.
func (s *Store) CreateEntityRelationship(ctx context.Context, a, b model.EntityRef, createdBy uint) (model.Relationship, error) {
	key := pairKey(a, b)

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&EntityRelationshipModel{}).
		Where("pair_key = ?", key).
		Count(&count).Error; err != nil {
		return model.Relationship{}, err
	}
	if count > 0 {
		return model.Relationship{}, ErrDuplicateRelationship
	}

	m := EntityRelationshipModel{
		RelationAType: string(a.Type),
		RelationAID:   a.ID,
		RelationBType: string(b.Type),
		RelationBID:   b.ID,
		PairKey:       key,
		CreatedBy:     createdBy,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Relationship{}, ErrDuplicateRelationship
		}
		return model.Relationship{}, err
	}

	return relationshipFromModel(m), nil
}

// EntityRelationshipExists reports whether the unordered pair is linked,
// regardless of argument order.
func (s *Store) EntityRelationshipExists(ctx context.Context, a, b model.EntityRef) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&EntityRelationshipModel{}).
		Where("pair_key = ?", pairKey(a, b)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetEntityRelationships returns every relationship where ref appears on
// either side, in creation order.
func (s *Store) GetEntityRelationships(ctx context.Context, ref model.EntityRef) ([]model.Relationship, error) {
	rows := make([]EntityRelationshipModel, 0)
	err := s.db.WithContext(ctx).
		Where("(relation_a_type = ? AND relation_a_id = ?) OR (relation_b_type = ? AND relation_b_id = ?)",
			string(ref.Type), ref.ID, string(ref.Type), ref.ID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.Relationship, 0, len(rows))
	for _, m := range rows {
		result = append(result, relationshipFromModel(m))
	}
	return result, nil
}

// DeleteEntityRelationship removes one relationship row. Deleting a missing
// row is not an error.
func (s *Store) DeleteEntityRelationship(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&EntityRelationshipModel{}, id).Error
}

func relationshipFromModel(m EntityRelationshipModel) model.Relationship {
	return model.Relationship{
		ID:        m.ID,
		AType:     model.EntityType(m.RelationAType),
		AID:       m.RelationAID,
		BType:     model.EntityType(m.RelationBType),
		BID:       m.RelationBID,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// The modernc sqlite driver reports constraint violations as plain
	// errors; match the message as a fallback.
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
