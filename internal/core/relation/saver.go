package relation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/permission"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// Diff is a form-submitted set of link and unlink requests against one
// source entity.
type Diff struct {
	Add    []model.EntityRef `json:"add"`
	Remove []model.EntityRef `json:"remove"`
}

// Save applies a relationship diff. The contract favors availability over
// all-or-nothing semantics:
//   - adds are idempotent: an existing link (or losing a creation race) is a
//     no-op, never an error
//   - removes of absent links are no-ops
//   - targets the caller may not write are skipped silently, so forms can
//     echo back entities outside the caller's grants
//   - each target type is attempted independently; failures are collected
//     and returned joined, naming the types that failed
//
// A nil perms slice disables the permission check.
func Save(ctx context.Context, db store.DataAccess, source model.EntityRef, diff Diff, actorID uint, perms []string) error {
	byType := map[model.EntityType]*Diff{}
	order := []model.EntityType{}
	group := func(ref model.EntityRef) *Diff {
		d, ok := byType[ref.Type]
		if !ok {
			d = &Diff{}
			byType[ref.Type] = d
			order = append(order, ref.Type)
		}
		return d
	}
	for _, ref := range diff.Add {
		g := group(ref)
		g.Add = append(g.Add, ref)
	}
	for _, ref := range diff.Remove {
		g := group(ref)
		g.Remove = append(g.Remove, ref)
	}

	var failures []error
	for _, t := range order {
		if perms != nil && !permission.CanWrite(perms, t) {
			continue
		}
		if err := saveType(ctx, db, source, *byType[t], actorID); err != nil {
			failures = append(failures, fmt.Errorf("links for %s: %w", t, err))
		}
	}
	return errors.Join(failures...)
}

func saveType(ctx context.Context, db store.DataAccess, source model.EntityRef, diff Diff, actorID uint) error {
	for _, ref := range diff.Add {
		exists, err := db.EntityRelationshipExists(ctx, source, ref)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = db.CreateEntityRelationship(ctx, source, ref, actorID)
		if errors.Is(err, store.ErrDuplicateRelationship) {
			// Lost a race with a concurrent save of the same pair.
			continue
		}
		if err != nil {
			return err
		}
	}

	if len(diff.Remove) == 0 {
		return nil
	}

	rels, err := db.GetEntityRelationships(ctx, source)
	if err != nil {
		return err
	}
	for _, ref := range diff.Remove {
		for _, rel := range rels {
			if rel.Other(source) == ref {
				if err := db.DeleteEntityRelationship(ctx, rel.ID); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}
