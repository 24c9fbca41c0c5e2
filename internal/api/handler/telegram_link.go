package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/telegram"
)

// TelegramLink mints the deep-link token the client embeds into
// https://t.me/<bot>?start=<token>. Opening the link binds the chat to
// the caller's account.
func (h *Handler) TelegramLink(c *gin.Context) {
	callerID, _ := caller(c)
	token, err := telegram.NewLinkToken(h.JWTSecret, callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
