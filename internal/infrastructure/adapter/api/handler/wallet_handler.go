package handler

import (
	"net/http"
	"strings"
	"time"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/usecase/currency"
	"wallet/internal/domain/usecase/ledger"
	"wallet/internal/infrastructure/adapter/api/dto"
	"wallet/internal/infrastructure/adapter/api/middleware"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the money movement endpoints: funding, payments,
// balance queries and statements. Every method requires an authenticated
// user resolved by the BasicAuth middleware.
type WalletHandler struct {
	engine    *ledger.Service
	converter *currency.Converter
	logger    coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(engine *ledger.Service, converter *currency.Converter, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		engine:    engine,
		converter: converter,
		logger:    logger,
	}
}

// Fund credits the authenticated user's wallet
func (h *WalletHandler) Fund(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.ErrInvalidRequest)
		return
	}

	balance, err := h.engine.FundAccount(c.Request.Context(), u, req.Amt.String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FundResponse{
		Balance: balance.String(),
	})
}

// Pay transfers money from the authenticated user to another user
func (h *WalletHandler) Pay(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.ErrInvalidRequest)
		return
	}

	balance, err := h.engine.PayUser(c.Request.Context(), u, req.To, req.Amt.String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PayResponse{
		Message: "Payment successful",
		Balance: balance.String(),
	})
}

// Balance reports the authenticated user's balance. An optional
// ?currency= query parameter converts the figure from the base currency.
func (h *WalletHandler) Balance(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	target := c.DefaultQuery("currency", currency.BaseCurrency)

	converted, err := h.converter.Convert(c.Request.Context(), u.Balance, currency.BaseCurrency, target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Balance:  converted.String(),
		Currency: normalizedCurrency(target),
	})
}

// Statement returns the authenticated user's ledger entries, newest first
func (h *WalletHandler) Statement(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	entries, err := h.engine.Statement(c.Request.Context(), u)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TransactionResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, transactionToDTO(entry))
	}
	c.JSON(http.StatusOK, response)
}

func transactionToDTO(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Kind:        string(tx.Kind),
		Amt:         tx.Amount.String(),
		UpdatedBal:  tx.UpdatedBalance.String(),
		Description: tx.Description,
		Timestamp:   tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func normalizedCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
