// Package relation implements the linked/available computation behind the
// portal's relationship form and the diff application that form submits.
package relation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/permission"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// Group is the loader's answer for one target type.
type Group struct {
	// Linked holds the entities already related to the source, in
	// relationship-creation order.
	Linked []model.EntitySummary `json:"linked"`
	// Available holds the rest of the candidate pool, newest first.
	Available []model.EntitySummary `json:"available"`
}

// LoadOptions carries the caller's read grants. A nil Permissions slice
// disables filtering entirely; an empty non-nil slice hides everything
// (fail closed).
type LoadOptions struct {
	Permissions []string
}

// Load computes, for each requested target type, which entities are linked
// to the source and which are eligible but unlinked. Read-only; concurrent
// calls are independent.
func Load(ctx context.Context, db store.DataAccess, source model.EntityRef, targetTypes []model.EntityType, opts LoadOptions) (map[model.EntityType]Group, error) {
	rels, err := db.GetEntityRelationships(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load relationships for %s %d: %w", source.Type, source.ID, err)
	}

	result := make(map[model.EntityType]Group, len(targetTypes))
	for _, target := range targetTypes {
		group, err := loadGroup(ctx, db, source, target, rels, opts)
		if err != nil {
			return nil, err
		}
		result[target] = group
	}
	return result, nil
}

func loadGroup(ctx context.Context, db store.DataAccess, source model.EntityRef, target model.EntityType, rels []model.Relationship, opts LoadOptions) (Group, error) {
	group := Group{
		Linked:    []model.EntitySummary{},
		Available: []model.EntitySummary{},
	}

	linkedIDs := map[uint]bool{}
	for _, rel := range rels {
		other := rel.Other(source)
		if other.Type != target {
			continue
		}
		linkedIDs[other.ID] = true

		entity, err := db.GetEntity(ctx, other)
		if errors.Is(err, store.ErrNotFound) {
			// Dangling endpoint: the entity was deleted but the link
			// never cascades. Tolerated, just not listed.
			continue
		}
		if err != nil {
			return Group{}, err
		}
		if !readable(opts, entity) {
			continue
		}
		group.Linked = append(group.Linked, entity)
	}

	pool, err := db.ListEntities(ctx, target)
	if err != nil {
		return Group{}, err
	}
	for _, entity := range pool {
		if linkedIDs[entity.ID] {
			continue
		}
		if target == source.Type && entity.ID == source.ID {
			continue
		}
		if !readable(opts, entity) {
			continue
		}
		group.Available = append(group.Available, entity)
	}

	return group, nil
}

func readable(opts LoadOptions, entity model.EntitySummary) bool {
	if opts.Permissions == nil {
		return true
	}
	return permission.CanRead(opts.Permissions, entity.Type)
}
