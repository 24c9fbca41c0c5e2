package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/models"
	"participium/backend/internal/stats"
)

// GetStatistics returns the public report statistics. No session needed;
// ?period=day|week|month adds the submission trend and ?category=
// narrows the counts to one office.
func (h *Handler) GetStatistics(c *gin.Context) {
	overview, err := h.Stats.Overview(
		stats.Period(c.Query("period")),
		models.OfficeType(c.Query("category")),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
