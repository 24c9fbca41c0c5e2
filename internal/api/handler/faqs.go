package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/models"
)

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// faqEditor gates FAQ maintenance to municipal staff.
func faqEditor(role models.OfficerRole) bool {
	switch role {
	case models.RoleAdministrator, models.RolePublicRelations, models.RoleTechnicalStaff:
		return true
	}
	return false
}

// ListFaqs returns every FAQ entry. Public.
func (h *Handler) ListFaqs(c *gin.Context) {
	faqs, err := h.Faqs.ListFaqs()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// CreateFaq adds one FAQ entry. Staff only.
func (h *Handler) CreateFaq(c *gin.Context) {
	if _, role := caller(c); !faqEditor(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage FAQs"})
		return
	}
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq := &models.Faq{Question: req.Question, Answer: req.Answer}
	if err := h.Faqs.CreateFaq(faq); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// UpdateFaq rewrites one FAQ entry. Staff only.
func (h *Handler) UpdateFaq(c *gin.Context) {
	if _, role := caller(c); !faqEditor(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage FAQs"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, err := h.Faqs.GetFaqByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	faq.Question = req.Question
	faq.Answer = req.Answer
	if err := h.Faqs.SaveFaq(faq); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faq)
}

// DeleteFaq removes one FAQ entry. Staff only.
func (h *Handler) DeleteFaq(c *gin.Context) {
	if _, role := caller(c); !faqEditor(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage FAQs"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Faqs.DeleteFaq(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted successfully."})
}
