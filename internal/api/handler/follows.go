package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/models"
)

type followRequest struct {
	Channel string `json:"channel"`
}

// FollowReport subscribes the caller to a report on one channel.
func (h *Handler) FollowReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, _ := caller(c)
	follow, err := h.Follows.Follow(callerID, id, models.Channel(req.Channel))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, follow)
}

// UnfollowReport removes one subscription of the caller.
func (h *Handler) UnfollowReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, _ := caller(c)
	if err := h.Follows.Unfollow(callerID, id, models.Channel(c.Query("channel"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FollowAll subscribes the caller to every report they authored.
func (h *Handler) FollowAll(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, _ := caller(c)
	result, err := h.Follows.FollowAll(callerID, models.Channel(req.Channel))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UnfollowAll removes every subscription of the caller on one channel.
func (h *Handler) UnfollowAll(c *gin.Context) {
	callerID, _ := caller(c)
	if err := h.Follows.UnfollowAll(callerID, models.Channel(c.Query("channel"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFollowed returns the reports the caller follows on one channel.
func (h *Handler) ListFollowed(c *gin.Context) {
	callerID, _ := caller(c)
	reports, err := h.Follows.ListFollowed(callerID, models.Channel(c.Query("channel")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ListFollowers returns a report's subscribers. Staff only.
func (h *Handler) ListFollowers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, role := caller(c)
	switch role {
	case models.RoleAdministrator, models.RolePublicRelations, models.RoleTechnicalStaff:
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view followers"})
		return
	}

	users, err := h.Follows.ListFollowers(id, models.Channel(c.Query("channel")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
