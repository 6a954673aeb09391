package http

import (
	"net/http"
	"strconv"

	"adwallet/pkg/logger"
	"adwallet/pkg/response"
	"adwallet/services/wallet/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// Amount is a pointer so an explicit zero passes required validation.
type UpdateWalletRequest struct {
	UserID string   `json:"userId" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
}

// UpdateWallet godoc
// @Summary      Adjust a user's wallet balance
// @Description  Apply a signed amount to the user's balance and record a ledger entry
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request body UpdateWalletRequest true "Adjustment"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/wallet [put]
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	var req UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "User ID and amount are required")
		return
	}

	update, err := h.walletUseCase.UpdateWallet(req.UserID, *req.Amount)
	if err != nil {
		if err.Error() == "user not found" {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to update wallet: %v", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Wallet updated successfully", update)
}

// GetBalance godoc
// @Summary      Get a user's wallet balance
// @Tags         wallet
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/wallet/{id} [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.Param("id")

	balance, err := h.walletUseCase.GetBalance(userID)
	if err != nil {
		if err.Error() == "user not found" {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to get balance: %v", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Wallet balance fetched successfully", gin.H{"balance": balance})
}

// GetTransactions godoc
// @Summary      List a user's wallet transactions
// @Description  Newest first; limit and offset are optional query params
// @Tags         wallet
// @Produce      json
// @Param        id path string true "User ID"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/wallet/{id}/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := c.Param("id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.walletUseCase.GetTransactions(userID, limit, offset)
	if err != nil {
		if err.Error() == "user not found" {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to get transactions: %v", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Transactions fetched successfully", transactions)
}
