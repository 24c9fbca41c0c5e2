package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/models"
	"participium/backend/internal/workflow"
)

type createReportRequest struct {
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	LocationName string   `json:"locationName"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Description  string   `json:"description"`
	Photos       []string `json:"photos"`
	Anonymity    bool     `json:"anonymity"`
}

// CreateReport files a new report. Anonymous submissions are accepted
// without a session; an authenticated non-anonymous submission records
// the caller as the author.
func (h *Handler) CreateReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := workflow.CreateInput{
		Title:        req.Title,
		Category:     models.OfficeType(req.Category),
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Description:  req.Description,
		Photos:       req.Photos,
		Anonymity:    req.Anonymity,
	}
	if callerID, role := caller(c); callerID != 0 && role == models.RoleCitizen {
		in.AuthorID = &callerID
	}

	report, err := h.Workflow.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GetReport returns one report.
func (h *Handler) GetReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.Workflow.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListReports returns the public map view, or a filtered work view for
// staff (?category=..., ?state=..., ?mine=true).
func (h *Handler) ListReports(c *gin.Context) {
	callerID, role := caller(c)

	if c.Query("mine") == "true" {
		switch role {
		case models.RoleCitizen:
			reports, err := h.Workflow.ListByAuthor(callerID)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, reports)
			return
		case models.RoleAdministrator, models.RolePublicRelations, models.RoleTechnicalStaff:
			reports, err := h.Workflow.ListByAssignedOfficer(callerID)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, reports)
			return
		}
	}

	if state := c.Query("state"); state != "" {
		switch role {
		case models.RoleAdministrator, models.RolePublicRelations, models.RoleTechnicalStaff:
		default:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view triage queues"})
			return
		}
		reports, err := h.Workflow.ListByState(models.ReportState(state))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reports)
		return
	}

	if category := c.Query("category"); category != "" {
		switch role {
		case models.RoleAdministrator, models.RolePublicRelations, models.RoleTechnicalStaff, models.RoleMaintainer:
		default:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view office queues"})
			return
		}
		reports, err := h.Workflow.ListByOffice(models.OfficeType(category))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reports)
		return
	}

	reports, err := h.Workflow.ListPublic()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

type assignRequest struct {
	OfficerID uint `json:"officerId" binding:"required"`
}

// AssignReport routes a PENDING report to an officer.
func (h *Handler) AssignReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, role := caller(c)
	report, err := h.Workflow.Assign(id, req.OfficerID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type reviewRequest struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

// ReviewReport approves or declines a report.
func (h *Handler) ReviewReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, role := caller(c)
	report, err := h.Workflow.Review(id, workflow.Decision(req.Decision), req.Reason, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type assignMaintainerRequest struct {
	MaintainerID uint `json:"maintainerId" binding:"required"`
}

// AssignMaintainer puts an external maintainer on a report. Restricted
// to the staff roles that manage assignment.
func (h *Handler) AssignMaintainer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req assignMaintainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, role := caller(c)
	switch role {
	case models.RoleAdministrator, models.RoleTechnicalStaff:
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to assign maintainers"})
		return
	}

	report, err := h.Workflow.AssignMaintainer(id, req.MaintainerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type transitionRequest struct {
	State string `json:"state" binding:"required"`
}

// TransitionReport walks a work-progress edge of the state machine.
func (h *Handler) TransitionReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, role := caller(c)
	report, err := h.Workflow.TransitionTo(id, models.ReportState(req.State), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport removes a report. Administrators only.
func (h *Handler) DeleteReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, role := caller(c)
	if err := h.Workflow.Delete(id, role); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOfficers returns the officers staffed on one office, for the
// assignment picker.
func (h *Handler) ListOfficers(c *gin.Context) {
	office := c.Query("office")
	if office == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing office parameter"})
		return
	}
	officers, err := h.Directory.ListOfficersByOffice(models.OfficeType(office))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, officers)
}

// ListMaintainers returns the active maintainers of one office category,
// for the assignment picker.
func (h *Handler) ListMaintainers(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing category parameter"})
		return
	}
	maintainers, err := h.Directory.ListMaintainersByCategory(models.OfficeType(category))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, maintainers)
}
