package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jalez/resident-committee-portal-sub004/internal/core/draft"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/relation"
)

// entityRef parses the :type/:id route segments. Unknown types 404 so the
// URL space stays aligned with the declared entity enumeration.
func (s *Server) entityRef(c *gin.Context) (model.EntityRef, bool) {
	t, ok := model.ParseEntityType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity type"})
		return model.EntityRef{}, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity id"})
		return model.EntityRef{}, false
	}
	return model.EntityRef{Type: t, ID: uint(id)}, true
}

// callerPerms reads the resolved grants the auth layer forwards. A missing
// header means a trusted internal caller and disables filtering; an empty
// header means a caller with no grants at all.
func callerPerms(c *gin.Context) []string {
	raw, present := c.Request.Header["X-Permissions"]
	if !present {
		return nil
	}
	perms := []string{}
	for _, headerValue := range raw {
		for _, grant := range strings.Split(headerValue, ",") {
			if g := strings.TrimSpace(grant); g != "" {
				perms = append(perms, g)
			}
		}
	}
	return perms
}

func callerID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.GetHeader("X-User-Id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

func (s *Server) LoadRelationships(c *gin.Context) {
	source, ok := s.entityRef(c)
	if !ok {
		return
	}

	targetsParam := c.Query("targets")
	if targetsParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targets query parameter is required"})
		return
	}
	var targets []model.EntityType
	for _, raw := range strings.Split(targetsParam, ",") {
		t, ok := model.ParseEntityType(strings.TrimSpace(raw))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown target type: " + raw})
			return
		}
		targets = append(targets, t)
	}

	groups, err := relation.Load(c.Request.Context(), s.Store, source, targets, relation.LoadOptions{
		Permissions: callerPerms(c),
	})
	if err != nil {
		s.Log.WithError(err).Error("failed to load relationships")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load relationships"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"relationships": groups})
}

func (s *Server) SaveRelationships(c *gin.Context) {
	source, ok := s.entityRef(c)
	if !ok {
		return
	}

	var diff relation.Diff
	if err := c.ShouldBindJSON(&diff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diff payload"})
		return
	}

	err := relation.Save(c.Request.Context(), s.Store, source, diff, callerID(c), callerPerms(c))
	if err != nil {
		// Best-effort application already happened for the other target
		// types; report what failed without failing the request.
		s.Log.WithError(err).Warn("relationship diff applied partially")
		c.JSON(http.StatusOK, gin.H{"status": "partial", "errors": strings.Split(err.Error(), "\n")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) AnalyzeEntity(c *gin.Context) {
	source, ok := s.entityRef(c)
	if !ok {
		return
	}

	result := s.Pipeline.Analyze(c.Request.Context(), source)
	c.JSON(http.StatusOK, result)
}

func (s *Server) AcceptSuggestion(c *gin.Context) {
	source, ok := s.entityRef(c)
	if !ok {
		return
	}

	var suggestion model.EntitySuggestion
	if err := c.ShouldBindJSON(&suggestion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid suggestion payload: " + err.Error()})
		return
	}

	created, err := s.Pipeline.Accept(c.Request.Context(), source, suggestion, callerID(c))
	if err != nil {
		s.Log.WithError(err).Error("failed to accept suggestion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept suggestion"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}

// UpdateEntity applies a partial field edit and runs the draft auto-publish
// rule on the result. Drafts promote exactly when their last required field
// is filled; every other edit leaves status untouched.
func (s *Server) UpdateEntity(c *gin.Context) {
	ref, ok := s.entityRef(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field payload"})
		return
	}

	ctx := c.Request.Context()
	current, err := s.Store.GetEntity(ctx, ref)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	if err := s.Store.UpdateEntityFields(ctx, ref, fields); err != nil {
		s.Log.WithError(err).Error("failed to update entity")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entity"})
		return
	}

	status := current.Status
	updated, err := s.Store.GetEntityFields(ctx, ref)
	if err != nil {
		s.Log.WithError(err).Error("failed to re-read entity fields")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entity"})
		return
	}
	if newStatus, promote := draft.Decide(ref.Type, current.Status, updated); promote {
		if err := s.Store.SetEntityStatus(ctx, ref, newStatus); err != nil {
			s.Log.WithError(err).Error("failed to promote draft")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entity"})
			return
		}
		status = newStatus
	}

	c.JSON(http.StatusOK, gin.H{"id": ref.ID, "type": ref.Type, "status": status})
}
