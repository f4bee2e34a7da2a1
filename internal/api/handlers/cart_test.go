package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/handlers"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/services/mocks"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/testutils"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartHandlerTest() (*mocks.CartService, *handlers.CartHandler) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	return mockCartService, cartHandler
}

func TestCartHandlerGetCart(t *testing.T) {
	sessionID := "sess-1"

	t.Run("Success", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		req := testutils.CreateSessionRequest("GET", "/api/v1/carts", nil, sessionID, nil)
		recorder := httptest.NewRecorder()

		mockCart := &models.Cart{SessionID: sessionID}
		mockCartService.On("GetCart", mock.Anything, sessionID).Return(mockCart, nil).Once()

		cartHandler.GetCart()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Missing session header", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		req := testutils.CreateTestRequest("GET", "/api/v1/carts", nil, nil)
		recorder := httptest.NewRecorder()

		cartHandler.GetCart()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})
}

func TestCartHandlerAddItem(t *testing.T) {
	sessionID := "sess-1"
	menuItemID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.AddItemRequest{MenuItemID: menuItemID, Quantity: 2})
		req := testutils.CreateSessionRequest("POST", "/api/v1/carts/items", bytes.NewBuffer(body), sessionID, nil)
		recorder := httptest.NewRecorder()

		mockCart := &models.Cart{SessionID: sessionID}
		mockCartService.On("AddItem", mock.Anything, sessionID, mock.AnythingOfType("*models.AddItemRequest")).
			Return(mockCart, nil).Once()

		cartHandler.AddItem()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Zero quantity fails validation", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.AddItemRequest{MenuItemID: menuItemID, Quantity: 0})
		req := testutils.CreateSessionRequest("POST", "/api/v1/carts/items", bytes.NewBuffer(body), sessionID, nil)
		recorder := httptest.NewRecorder()

		cartHandler.AddItem()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown item maps to 404", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.AddItemRequest{MenuItemID: menuItemID, Quantity: 1})
		req := testutils.CreateSessionRequest("POST", "/api/v1/carts/items", bytes.NewBuffer(body), sessionID, nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("AddItem", mock.Anything, sessionID, mock.AnythingOfType("*models.AddItemRequest")).
			Return(nil, appErrors.NotFoundError("Menu item not found")).Once()

		cartHandler.AddItem()(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestCartHandlerUpdateQuantity(t *testing.T) {
	sessionID := "sess-1"
	lineID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 3})
		req := testutils.CreateSessionRequest("PUT", "/api/v1/carts/items/"+lineID.String(),
			bytes.NewBuffer(body), sessionID, map[string]string{"lineId": lineID.String()})
		recorder := httptest.NewRecorder()

		mockCart := &models.Cart{SessionID: sessionID}
		mockCartService.On("UpdateQuantity", mock.Anything, sessionID, lineID, 3).Return(mockCart, nil).Once()

		cartHandler.UpdateQuantity()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Malformed line ID", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 3})
		req := testutils.CreateSessionRequest("PUT", "/api/v1/carts/items/not-a-uuid",
			bytes.NewBuffer(body), sessionID, map[string]string{"lineId": "not-a-uuid"})
		recorder := httptest.NewRecorder()

		cartHandler.UpdateQuantity()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandlerRemoveItem(t *testing.T) {
	sessionID := "sess-1"
	lineID := uuid.New()

	mockCartService, cartHandler := setupCartHandlerTest()
	req := testutils.CreateSessionRequest("DELETE", "/api/v1/carts/items/"+lineID.String(),
		nil, sessionID, map[string]string{"lineId": lineID.String()})
	recorder := httptest.NewRecorder()

	mockCart := &models.Cart{SessionID: sessionID}
	mockCartService.On("RemoveItem", mock.Anything, sessionID, lineID).Return(mockCart, nil).Once()

	cartHandler.RemoveItem()(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandlerApplyCoupon(t *testing.T) {
	sessionID := "sess-1"

	t.Run("Success", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.ApplyCouponRequest{Code: "PANIPURI6"})
		req := testutils.CreateSessionRequest("POST", "/api/v1/carts/coupon", bytes.NewBuffer(body), sessionID, nil)
		recorder := httptest.NewRecorder()

		mockCart := &models.Cart{SessionID: sessionID, CouponCode: "PANIPURI6"}
		mockCartService.On("ApplyCoupon", mock.Anything, sessionID, "PANIPURI6").Return(mockCart, nil).Once()

		cartHandler.ApplyCoupon()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Ineligible coupon maps to 422", func(t *testing.T) {
		mockCartService, cartHandler := setupCartHandlerTest()
		body, _ := json.Marshal(models.ApplyCouponRequest{Code: "PANIPURI6"})
		req := testutils.CreateSessionRequest("POST", "/api/v1/carts/coupon", bytes.NewBuffer(body), sessionID, nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("ApplyCoupon", mock.Anything, sessionID, "PANIPURI6").
			Return(nil, appErrors.CouponIneligibleError("Order minimum of 100 not met")).Once()

		cartHandler.ApplyCoupon()(recorder, req)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeCouponIneligible, resp.Error.Code)
	})
}

func TestCartHandlerClearCoupon(t *testing.T) {
	sessionID := "sess-1"

	mockCartService, cartHandler := setupCartHandlerTest()
	req := testutils.CreateSessionRequest("DELETE", "/api/v1/carts/coupon", nil, sessionID, nil)
	recorder := httptest.NewRecorder()

	mockCart := &models.Cart{SessionID: sessionID}
	mockCartService.On("ClearCoupon", mock.Anything, sessionID).Return(mockCart, nil).Once()

	cartHandler.ClearCoupon()(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockCartService.AssertExpectations(t)
}
