package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every endpoint on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/users", h.Register)
	r.POST("/api/session", h.Login)

	r.GET("/ws", h.AuthRequired(), h.ServeWebSocket)

	api := r.Group("/api")
	{
		api.POST("/reports", h.AuthOptional(), h.CreateReport)
		api.GET("/reports", h.AuthOptional(), h.ListReports)
		api.GET("/reports/:id", h.AuthOptional(), h.GetReport)

		api.GET("/statistics", h.GetStatistics)
		api.GET("/faqs", h.ListFaqs)

		authed := api.Group("", h.AuthRequired())
		{
			authed.POST("/reports/:id/assign", h.AssignReport)
			authed.POST("/reports/:id/review", h.ReviewReport)
			authed.POST("/reports/:id/maintainer", h.AssignMaintainer)
			authed.POST("/reports/:id/transition", h.TransitionReport)
			authed.DELETE("/reports/:id", h.DeleteReport)

			authed.GET("/officers", h.ListOfficers)
			authed.GET("/maintainers", h.ListMaintainers)

			authed.POST("/reports/:id/follow", h.FollowReport)
			authed.DELETE("/reports/:id/follow", h.UnfollowReport)
			authed.GET("/reports/:id/followers", h.ListFollowers)
			authed.POST("/follows", h.FollowAll)
			authed.DELETE("/follows", h.UnfollowAll)
			authed.GET("/follows", h.ListFollowed)

			authed.GET("/notifications", h.ListNotifications)
			authed.POST("/notifications/:id/read", h.MarkNotificationRead)

			authed.POST("/reports/:id/messages", h.SendPublicMessage)
			authed.GET("/reports/:id/messages", h.ListPublicMessages)
			authed.POST("/reports/:id/internal-messages", h.SendInternalMessage)
			authed.GET("/reports/:id/internal-messages", h.ListInternalMessages)

			authed.POST("/faqs", h.CreateFaq)
			authed.PATCH("/faqs/:id", h.UpdateFaq)
			authed.DELETE("/faqs/:id", h.DeleteFaq)

			authed.GET("/telegram/link", h.TelegramLink)
		}
	}
}
