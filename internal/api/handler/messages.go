package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/models"
)

type publicMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendPublicMessage posts to a report's public conversation.
func (h *Handler) SendPublicMessage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req publicMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, role := caller(c)
	msg, err := h.Messaging.SendPublic(id, callerID, role, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListPublicMessages returns a report's public conversation.
func (h *Handler) ListPublicMessages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, role := caller(c)
	msgs, err := h.Messaging.ListPublic(id, callerID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

type internalMessageRequest struct {
	ReceiverType string `json:"receiverType" binding:"required"`
	ReceiverID   uint   `json:"receiverId" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

// callerParticipant derives the conversation participant from the
// session identity.
func callerParticipant(c *gin.Context) models.Participant {
	callerID, role := caller(c)
	kind := models.KindOfficer
	switch role {
	case models.RoleCitizen:
		kind = models.KindCitizen
	case models.RoleMaintainer:
		kind = models.KindMaintainer
	}
	return models.Participant{Kind: kind, ID: callerID}
}

// SendInternalMessage posts to the officer/maintainer conversation of a
// report.
func (h *Handler) SendInternalMessage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req internalMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiver := models.Participant{
		Kind: models.ParticipantKind(req.ReceiverType),
		ID:   req.ReceiverID,
	}
	msg, err := h.Messaging.SendInternal(id, callerParticipant(c), receiver, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListInternalMessages returns the internal conversation of a report.
func (h *Handler) ListInternalMessages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msgs, err := h.Messaging.ListInternal(id, callerParticipant(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
