package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	partnerapp "github.com/storefront/backend/internal/application/partner"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

func setupCustomerRouter(repo *MockCustomerRepository) *gin.Engine {
	h := NewCustomerHandler(partnerapp.NewCustomerService(repo))

	engine := gin.New()
	engine.POST("/customers", h.Register)
	engine.GET("/customers", h.List)
	engine.GET("/customers/active", h.Active)
	return engine
}

func TestCustomerHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Register", mock.Anything, "Alice", "15551234567").
			Return(&partner.Customer{ID: 1, Name: "Alice", Phone: "15551234567"}, nil)
		engine := setupCustomerRouter(repo)

		w := postJSON(engine, "/customers", map[string]any{
			"name":  "Alice",
			"phone": "+1 (555) 123-4567",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
		repo.AssertExpectations(t)
	})

	t.Run("missing phone", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		engine := setupCustomerRouter(repo)

		w := postJSON(engine, "/customers", map[string]any{"name": "Alice"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("domain validation failure", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Register", mock.Anything, "Bob", "abc").
			Return(nil, shared.NewDomainError("INVALID_PHONE", "Phone number must contain digits only"))
		engine := setupCustomerRouter(repo)

		w := postJSON(engine, "/customers", map[string]any{"name": "Bob", "phone": "abc"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeValidation)
	})
}

func TestCustomerHandler_Active(t *testing.T) {
	t.Run("returns latest customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Latest", mock.Anything).
			Return(&partner.Customer{ID: 2, Name: "Bob", Phone: "5552222"}, nil)
		engine := setupCustomerRouter(repo)

		req := httptest.NewRequest("GET", "/customers/active", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bob")
	})

	t.Run("no customers yet", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Latest", mock.Anything).Return(nil, shared.ErrNotFound)
		engine := setupCustomerRouter(repo)

		req := httptest.NewRequest("GET", "/customers/active", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeNoActiveCustomer)
	})
}
