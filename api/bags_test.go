package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/service/bags"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBagUseCase is a mock implementation of bags.BagUseCase
type MockBagUseCase struct {
	mock.Mock
}

func (m *MockBagUseCase) ListForPassenger(ctx context.Context, passengerID int64) ([]domain.BagDrop, error) {
	args := m.Called(ctx, passengerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BagDrop), args.Error(1)
}

func (m *MockBagUseCase) Register(ctx context.Context, input bags.RegisterBagInput) (*domain.BagDrop, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BagDrop), args.Error(1)
}

func newBagRouter(service bags.BagUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBagHandler(service).Register(router.Group("/api/bagdrop"))
	return router
}

func postBag(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/bagdrop", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestBagHandler_listForPassenger(t *testing.T) {
	mockService := &MockBagUseCase{}
	handler := NewBagHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "passengerId", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/api/bagdrop/passenger/1", nil)

	list := []domain.BagDrop{{ID: 1, PassengerID: 1, BagTagNumber: "0123456789", Weight: 1850, Status: domain.BagStatusRegistered}}
	mockService.On("ListForPassenger", c.Request.Context(), int64(1)).Return(list, nil)

	handler.listForPassenger(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weightKg":18.5`)
	mockService.AssertExpectations(t)
}

func TestBagHandler_listForPassenger_InvalidID(t *testing.T) {
	mockService := &MockBagUseCase{}
	router := newBagRouter(mockService)

	for _, id := range []string{"abc", "0", "-4"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/bagdrop/passenger/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
	mockService.AssertNotCalled(t, "ListForPassenger", mock.Anything, mock.Anything)
}

func TestBagHandler_register(t *testing.T) {
	mockService := &MockBagUseCase{}
	router := newBagRouter(mockService)

	input := bags.RegisterBagInput{PassengerID: 1, BagTagNumber: "0123456789", WeightKg: 18.5}
	bag := &domain.BagDrop{ID: 7, PassengerID: 1, BagTagNumber: "0123456789", Weight: 1850, Status: domain.BagStatusRegistered}
	mockService.On("Register", mock.Anything, input).Return(bag, nil).Once()

	w := postBag(router, `{"passengerId":1,"bagTagNumber":"0123456789","weightKg":18.5}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/bagdrop/passenger/1", w.Header().Get("Location"))

	var response bagResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Registered", response.Status)
	assert.Equal(t, domain.Weight(1850), response.WeightKg)
	mockService.AssertExpectations(t)
}

func TestBagHandler_register_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "missing passenger", body: `{"bagTagNumber":"0123456789","weightKg":10}`},
		{name: "zero passenger", body: `{"passengerId":0,"bagTagNumber":"0123456789","weightKg":10}`},
		{name: "short tag", body: `{"passengerId":1,"bagTagNumber":"12345","weightKg":10}`},
		{name: "letters in tag", body: `{"passengerId":1,"bagTagNumber":"01234567AB","weightKg":10}`},
		{name: "too light", body: `{"passengerId":1,"bagTagNumber":"0123456789","weightKg":0.05}`},
		{name: "too heavy", body: `{"passengerId":1,"bagTagNumber":"0123456789","weightKg":32.01}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBagUseCase{}
			router := newBagRouter(mockService)

			w := postBag(router, tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestBagHandler_register_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{name: "unknown passenger", err: domain.NotFoundf("passenger 1"), wantStatus: http.StatusNotFound, wantTitle: "Passenger not found"},
		{name: "not checked in", err: domain.Conflictf("bags can only be registered for checked-in passengers"), wantStatus: http.StatusConflict, wantTitle: "Bag registration not permitted"},
		{name: "maximum bags", err: domain.Conflictf("passenger already has the maximum of 5 bags registered"), wantStatus: http.StatusConflict, wantTitle: "Bag registration not permitted"},
		{name: "invalid weight", err: domain.InvalidArgumentf("bag weight out of range"), wantStatus: http.StatusUnprocessableEntity, wantTitle: "Bag registration not permitted"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBagUseCase{}
			router := newBagRouter(mockService)
			mockService.On("Register", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := postBag(router, `{"passengerId":1,"bagTagNumber":"0123456789","weightKg":20}`)

			assert.Equal(t, tc.wantStatus, w.Code)

			var response errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.wantTitle, response.Error)
		})
	}
}
