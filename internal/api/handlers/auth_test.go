package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func setupAuthHandlerTest() (*mocks.StaffService, *handlers.AuthHandler) {
	mockStaffService := new(mocks.StaffService)
	authHandler := handlers.NewAuthHandler(mockStaffService)

	return mockStaffService, authHandler
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStaffService, authHandler := setupAuthHandlerTest()
		body, _ := json.Marshal(models.LoginRequest{Email: "staff@example.com", Password: "secret123"})
		req := testutils.CreateTestRequest("POST", "/api/v1/staff/login", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockStaffService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Token: "signed-jwt", ExpiresIn: 28800}, nil).Once()

		authHandler.Login()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "signed-jwt", data["token"])
		mockStaffService.AssertExpectations(t)
	})

	t.Run("Bad credentials map to 401", func(t *testing.T) {
		mockStaffService, authHandler := setupAuthHandlerTest()
		body, _ := json.Marshal(models.LoginRequest{Email: "staff@example.com", Password: "wrongpass"})
		req := testutils.CreateTestRequest("POST", "/api/v1/staff/login", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockStaffService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(nil, appErrors.UnauthorizedError("Invalid email or password")).Once()

		authHandler.Login()(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)
	})

	t.Run("Malformed email fails validation", func(t *testing.T) {
		mockStaffService, authHandler := setupAuthHandlerTest()
		body, _ := json.Marshal(models.LoginRequest{Email: "not-an-email", Password: "secret123"})
		req := testutils.CreateTestRequest("POST", "/api/v1/staff/login", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		authHandler.Login()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockStaffService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}
