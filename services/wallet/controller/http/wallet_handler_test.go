package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"adwallet/pkg/logger"
	"adwallet/services/wallet/entity"
	"adwallet/services/wallet/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWalletUseCase is a mock implementation of WalletUseCase
type MockWalletUseCase struct {
	mock.Mock
}

func (m *MockWalletUseCase) UpdateWallet(userID string, amount float64) (*entity.WalletUpdate, error) {
	args := m.Called(userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WalletUpdate), args.Error(1)
}

func (m *MockWalletUseCase) GetBalance(userID string) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockWalletUseCase) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

var _ usecase.WalletUseCase = (*MockWalletUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestUpdateWallet_Success(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/wallet", handler.UpdateWallet)

	mockUseCase.On("UpdateWallet", "user-123", 10.0).
		Return(&entity.WalletUpdate{WalletBalance: 22.5}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"userId": "user-123",
		"amount": 10.0,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/wallet", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Wallet updated successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 22.5, data["walletBalance"])

	mockUseCase.AssertExpectations(t)
}

func TestUpdateWallet_UserNotFound(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/wallet", handler.UpdateWallet)

	mockUseCase.On("UpdateWallet", "ghost", 10.0).
		Return(nil, errors.New("user not found"))

	body, _ := json.Marshal(map[string]interface{}{
		"userId": "ghost",
		"amount": 10.0,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/wallet", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "User not found", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestUpdateWallet_ZeroAmount(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/wallet", handler.UpdateWallet)

	mockUseCase.On("UpdateWallet", "user-123", 0.0).
		Return(&entity.WalletUpdate{WalletBalance: 12.5}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"userId": "user-123",
		"amount": 0,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/wallet", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// An explicit zero is a valid no-op adjustment, not a missing field
	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateWallet_MissingFields(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/wallet", handler.UpdateWallet)

	body, _ := json.Marshal(map[string]interface{}{"userId": "user-123"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/wallet", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UpdateWallet")
}

func TestGetBalance_Success(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/wallet/:id", handler.GetBalance)

	mockUseCase.On("GetBalance", "user-123").Return(7.25, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/wallet/user-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Wallet balance fetched successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 7.25, data["balance"])

	mockUseCase.AssertExpectations(t)
}

func TestGetBalance_UserNotFound(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/wallet/:id", handler.GetBalance)

	mockUseCase.On("GetBalance", "ghost").Return(float64(0), errors.New("user not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/wallet/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetTransactions_Success(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/wallet/:id/transactions", handler.GetTransactions)

	mockTransactions := []*entity.Transaction{
		{ID: "txn-2", UserID: "user-123", Type: entity.TransactionTypeClickReward, Amount: 5},
		{ID: "txn-1", UserID: "user-123", Type: entity.TransactionTypeAdjustment, Amount: 10},
	}

	mockUseCase.On("GetTransactions", "user-123", 10, 0).Return(mockTransactions, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/wallet/user-123/transactions?limit=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Transactions fetched successfully", response["message"])

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	mockUseCase.AssertExpectations(t)
}
