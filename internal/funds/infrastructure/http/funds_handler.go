package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type transferRequestBody struct {
	From   string          `json:"from" binding:"required"`
	To     string          `json:"to" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type withdrawRequestBody struct {
	From   string          `json:"from" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type depositRequestBody struct {
	To     string          `json:"to" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type openAccountRequestBody struct {
	Number string `json:"number" binding:"required"`
}

var amountPrecisionMsg = fmt.Sprintf("amount must have at most %d decimal places", domain.AmountScale)

type FundsHandler struct {
	mover    domain.MoneyMover
	accounts domain.AccountService
}

func NewFundsHandler(mover domain.MoneyMover, accounts domain.AccountService) *FundsHandler {
	return &FundsHandler{
		mover:    mover,
		accounts: accounts,
	}
}

func (h *FundsHandler) Transfer(c *gin.Context) {
	var body transferRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	user, ok := userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	if !hasLedgerPrecision(body.Amount) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": amountPrecisionMsg})
		return
	}

	success, err := h.mover.TransferMoney(c.Request.Context(), body.Amount, body.From, body.To, user)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

func (h *FundsHandler) Withdraw(c *gin.Context) {
	var body withdrawRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	user, ok := userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	if !hasLedgerPrecision(body.Amount) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": amountPrecisionMsg})
		return
	}

	success, err := h.mover.Withdraw(c.Request.Context(), body.Amount, body.From, user)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

func (h *FundsHandler) Deposit(c *gin.Context) {
	var body depositRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	if !body.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "deposit amount must be positive"})
		return
	}

	if !hasLedgerPrecision(body.Amount) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": amountPrecisionMsg})
		return
	}

	success, err := h.mover.Deposit(c.Request.Context(), body.Amount, body.To)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

func (h *FundsHandler) OpenAccount(c *gin.Context) {
	var body openAccountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	user, ok := userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	err := h.accounts.OpenAccount(c.Request.Context(), body.Number, user)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"number": body.Number})
}

func hasLedgerPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(domain.AmountScale))
}

func handleDomainError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		fundsErr      *domain.InsufficientFundsError
		authErr       *domain.AuthorizationError
		existsErr     *domain.AccountExistsError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Error()})
	case errors.As(err, &fundsErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": fundsErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, gin.H{
			"errors":  authErr.Error(),
			"account": authErr.AccountNumber,
			"user":    authErr.UserName,
		})
	case errors.As(err, &existsErr):
		c.JSON(http.StatusConflict, gin.H{"errors": existsErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
