// Package handler is the HTTP surface: gin handlers, JWT auth and the
// WebSocket upgrade.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"participium/backend/internal/apperr"
	"participium/backend/internal/follows"
	"participium/backend/internal/messaging"
	"participium/backend/internal/models"
	"participium/backend/internal/notify"
	"participium/backend/internal/realtime"
	"participium/backend/internal/stats"
	"participium/backend/internal/workflow"
)

// Directory is the account lookup slice the handlers need for login and
// telegram linking.
type Directory interface {
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	GetOfficerByID(id uint) (*models.Officer, error)
	ListOfficersByOffice(office models.OfficeType) ([]models.Officer, error)
	GetMaintainerByID(id uint) (*models.Maintainer, error)
	ListMaintainersByCategory(category models.OfficeType) ([]models.Maintainer, error)
}

// FaqStore is the FAQ persistence slice the handlers need.
type FaqStore interface {
	ListFaqs() ([]models.Faq, error)
	GetFaqByID(id uint) (*models.Faq, error)
	CreateFaq(faq *models.Faq) error
	SaveFaq(faq *models.Faq) error
	DeleteFaq(id uint) error
}

// Handler holds the services the routes dispatch into.
type Handler struct {
	Workflow  *workflow.Engine
	Follows   *follows.Registry
	Notify    *notify.Fanout
	Messaging *messaging.Service
	Stats     *stats.Service
	Hub       *realtime.Hub
	Directory Directory
	Faqs      FaqStore

	JWTSecret string
}

// NewHandler wires the HTTP handler.
func NewHandler(wf *workflow.Engine, fr *follows.Registry, nf *notify.Fanout, ms *messaging.Service, st *stats.Service, hub *realtime.Hub, dir Directory, faqs FaqStore, secret string) *Handler {
	return &Handler{
		Workflow:  wf,
		Follows:   fr,
		Notify:    nf,
		Messaging: ms,
		Stats:     st,
		Hub:       hub,
		Directory: dir,
		Faqs:      faqs,
		JWTSecret: secret,
	}
}

// respondError maps service errors onto HTTP statuses. Unclassified
// errors become 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return
	}
	log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// pathID parses the named numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}
