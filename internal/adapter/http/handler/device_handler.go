package handler

import (
	"tapconnect/internal/adapter/http/dto"
	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"
	"tapconnect/pkg/response"

	"github.com/gin-gonic/gin"
)

// DeviceHandler handles device-originated endpoints: handshakes, taps,
// binding and tap-to-pay. Callers are trusted internal gateways (the radio
// bridge and vendor terminals), identified upstream.
type DeviceHandler struct {
	interactionSvc ports.InteractionService
	walletSvc      ports.WalletService
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(interactionSvc ports.InteractionService, walletSvc ports.WalletService) *DeviceHandler {
	return &DeviceHandler{interactionSvc: interactionSvc, walletSvc: walletSvc}
}

// Handshake handles POST /api/v1/devices/handshake.
func (h *DeviceHandler) Handshake(c *gin.Context) {
	var req dto.HandshakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.interactionSvc.Handshake(c.Request.Context(), ports.HandshakeRequest{
		DeviceID:     req.DeviceID,
		PeerDeviceID: req.PeerDeviceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Tap handles POST /api/v1/devices/tap.
func (h *DeviceHandler) Tap(c *gin.Context) {
	var req dto.TapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.interactionSvc.HandleTap(c.Request.Context(), req.DeviceID, req.EventID); err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{"device_id": req.DeviceID})
}

// Assign handles POST /api/v1/devices/assign.
func (h *DeviceHandler) Assign(c *gin.Context) {
	var req dto.AssignDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	device, err := h.interactionSvc.AssignDevice(c.Request.Context(), ports.AssignDeviceRequest{
		DeviceID: req.DeviceID,
		UserID:   req.UserID,
		EventID:  req.EventID,
		Profile: domain.ProfileSnapshot{
			Name:      req.Profile.Name,
			Interests: req.Profile.Interests,
			Status:    req.Profile.Status,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, device)
}

// Payment handles POST /api/v1/devices/payment.
func (h *DeviceHandler) Payment(c *gin.Context) {
	var req dto.DevicePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.walletSvc.ProcessDevicePayment(c.Request.Context(), ports.DevicePaymentRequest{
		DeviceID:       req.DeviceID,
		VendorID:       req.VendorID,
		Amount:         req.Amount,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
