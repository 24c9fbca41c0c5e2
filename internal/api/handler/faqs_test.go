package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"participium/backend/internal/api/handler"
	"participium/backend/internal/models"
)

// MockFaqStore is a testify mock of the FAQ store.
type MockFaqStore struct {
	mock.Mock
}

func (m *MockFaqStore) ListFaqs() ([]models.Faq, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Faq), args.Error(1)
}

func (m *MockFaqStore) GetFaqByID(id uint) (*models.Faq, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Faq), args.Error(1)
}

func (m *MockFaqStore) CreateFaq(faq *models.Faq) error {
	args := m.Called(faq)
	return args.Error(0)
}

func (m *MockFaqStore) SaveFaq(faq *models.Faq) error {
	args := m.Called(faq)
	return args.Error(0)
}

func (m *MockFaqStore) DeleteFaq(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func newFaqTestRouter(h *handler.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/faqs", h.ListFaqs)
	r.POST("/api/faqs", h.AuthRequired(), h.CreateFaq)
	r.DELETE("/api/faqs/:id", h.AuthRequired(), h.DeleteFaq)
	return r
}

func TestListFaqs_Public(t *testing.T) {
	store := new(MockFaqStore)
	store.On("ListFaqs").Return([]models.Faq{
		{ID: 1, Question: "How do I report a pothole?", Answer: "File a report in the roads category."},
	}, nil)
	h := &handler.Handler{Faqs: store, JWTSecret: "test-secret"}
	r := newFaqTestRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pothole")
}

func TestCreateFaq_StaffOnly(t *testing.T) {
	store := new(MockFaqStore)
	store.On("CreateFaq", mock.AnythingOfType("*models.Faq")).Return(nil)
	h := &handler.Handler{Faqs: store, JWTSecret: "test-secret"}
	r := newFaqTestRouter(h)

	body := `{"question":"Who empties the bins?","answer":"The waste office."}`

	citizenToken, err := handler.GenerateToken("test-secret", 7, models.RoleCitizen)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/faqs", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+citizenToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "CreateFaq")

	staffToken, err := handler.GenerateToken("test-secret", 3, models.RoleTechnicalStaff)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/faqs", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+staffToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertCalled(t, "CreateFaq", mock.AnythingOfType("*models.Faq"))
}

func TestDeleteFaq_Staff(t *testing.T) {
	store := new(MockFaqStore)
	store.On("DeleteFaq", uint(5)).Return(nil)
	h := &handler.Handler{Faqs: store, JWTSecret: "test-secret"}
	r := newFaqTestRouter(h)

	token, err := handler.GenerateToken("test-secret", 1, models.RoleAdministrator)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/faqs/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}
