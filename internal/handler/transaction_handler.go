package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"moneyman/internal/errors"
	"moneyman/internal/model"
	"moneyman/internal/service"
)

// TransactionHandler handles transaction CRUD endpoints.
type TransactionHandler struct {
	txnService service.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(txnService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txnService: txnService}
}

// TransactionRequest carries the mutable fields of a transaction. Amount is a
// pointer so an absent field is distinguishable from zero.
type TransactionRequest struct {
	Title  string   `json:"title" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
	Type   string   `json:"type" validate:"required,oneof=Income Expenses"`
}

// List godoc
// @Summary List the caller's transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} model.Transaction
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction [get]
func (h *TransactionHandler) List(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	txns, err := h.txnService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return errorJSON(c, err)
	}
	if txns == nil {
		txns = []model.Transaction{}
	}

	return c.JSON(http.StatusOK, txns)
}

// Create godoc
// @Summary Add a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Transaction data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: validationMessage(err)})
	}

	transactionID, err := h.txnService.Create(c.Request().Context(), claims.UserID, req.Title, *req.Amount, req.Type)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":       "Transaction added successfully",
		"transactionId": transactionID,
	})
}

// Update godoc
// @Summary Update an owned transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body TransactionRequest true "Transaction data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: validationMessage(err)})
	}

	if err := h.txnService.Update(c.Request().Context(), claims.UserID, c.Param("id"), req.Title, *req.Amount, req.Type); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Transaction updated successfully",
	})
}

// Delete godoc
// @Summary Delete an owned transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transaction/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.txnService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Transaction with ID %s deleted", id),
	})
}

// Clear godoc
// @Summary Delete all of the caller's transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions/clear [delete]
func (h *TransactionHandler) Clear(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	if err := h.txnService.Clear(c.Request().Context(), claims.UserID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "All transactions cleared successfully",
	})
}
