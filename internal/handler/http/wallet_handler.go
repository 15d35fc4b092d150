package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
	"github.com/vibra-app/vibra/internal/infrastructure/metrics"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// WalletHandlerInterface defines the methods for the wallet handler to
// allow interface-based dependency injection (for testing/mocking)
type WalletHandlerInterface interface {
	GetSummary(*gin.Context)
	GetTransactions(*gin.Context)
	Withdraw(*gin.Context)
}

var _ WalletHandlerInterface = (*WalletHandler)(nil)

type WalletHandler struct {
	wallet usecasecontract.IWalletUseCase
}

func NewWalletHandler(wallet usecasecontract.IWalletUseCase) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// GetSummary returns the wallet dashboard header data
func (h *WalletHandler) GetSummary(c *gin.Context) {
	summary, err := h.wallet.Summary(c.Request.Context(), userID(c))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "Wallet not found")
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}

// GetTransactions returns the caller's ledger, newest first
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.wallet.Transactions(c.Request.Context(), userID(c))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	SuccessHandler(c, http.StatusOK, transactions)
}

// Withdraw runs a simulated withdrawal under the request context, so a
// client disconnect cancels the pending delay
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	receipt, err := h.wallet.Withdraw(c.Request.Context(), userID(c), amount)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAmountBelowMinimum):
			metrics.Withdrawals.WithLabelValues("rejected").Inc()
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			metrics.Withdrawals.WithLabelValues("cancelled").Inc()
			ErrorHandler(c, http.StatusRequestTimeout, "Withdrawal cancelled")
		default:
			metrics.Withdrawals.WithLabelValues("failed").Inc()
			ErrorHandler(c, http.StatusInternalServerError, "Withdrawal failed")
		}
		return
	}

	metrics.Withdrawals.WithLabelValues("completed").Inc()
	SuccessHandler(c, http.StatusOK, receipt)
}

// userID reads the user identifier placed on the context by the auth
// middleware.
func userID(c *gin.Context) string {
	value, _ := c.Get("userID")
	id, _ := value.(string)
	return id
}
