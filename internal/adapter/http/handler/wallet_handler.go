package handler

import (
	"tapconnect/internal/adapter/http/dto"
	"tapconnect/internal/adapter/http/middleware"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"
	"tapconnect/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles token wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Validation("missing user identity"))
		return
	}

	summary, err := h.walletSvc.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, summary)
}

// Purchase handles POST /api/v1/wallet/purchase.
func (h *WalletHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Validation("missing user identity"))
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	entry, err := h.walletSvc.Purchase(c.Request.Context(), ports.PurchaseRequest{
		UserID:     userID,
		Amount:     req.Amount,
		PaymentRef: req.PaymentRef,
		EventID:    req.EventID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// Spend handles POST /api/v1/wallet/spend.
func (h *WalletHandler) Spend(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Validation("missing user identity"))
		return
	}

	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.walletSvc.Spend(c.Request.Context(), ports.SpendRequest{
		UserID:         userID,
		VendorID:       req.VendorID,
		ProductID:      req.ProductID,
		Amount:         req.Amount,
		Quantity:       req.Quantity,
		EventID:        req.EventID,
		IdempotencyKey: req.IdempotencyKey,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Reward handles POST /api/v1/wallet/reward. The caller is an internal
// operator surface, so the target user comes from the body rather than
// the identity header.
func (h *WalletHandler) Reward(c *gin.Context) {
	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	entry, err := h.walletSvc.Reward(c.Request.Context(), ports.RewardRequest{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
		EventID:     req.EventID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}
