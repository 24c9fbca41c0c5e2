package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the caller's notifications, newest first.
// ?unread=true limits the list to unread ones.
func (h *Handler) ListNotifications(c *gin.Context) {
	callerID, _ := caller(c)
	notifications, err := h.Notify.ListByUser(callerID, c.Query("unread") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead marks one of the caller's notifications read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, _ := caller(c)
	n, err := h.Notify.MarkRead(id, callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
