package handler

import (
	"strconv"

	"tapconnect/internal/adapter/http/dto"
	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"
	"tapconnect/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler handles vendor catalog and event read endpoints.
type VendorHandler struct {
	vendorSvc       ports.VendorCatalogService
	interactionRepo ports.InteractionRepository
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorSvc ports.VendorCatalogService, interactionRepo ports.InteractionRepository) *VendorHandler {
	return &VendorHandler{vendorSvc: vendorSvc, interactionRepo: interactionRepo}
}

// CreateVendor handles POST /api/v1/vendors.
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	vendor := &domain.Vendor{
		EventID:       req.EventID,
		Name:          req.Name,
		AcceptsTokens: req.AcceptsTokens,
		ExchangeRate:  req.ExchangeRate,
	}
	if err := h.vendorSvc.CreateVendor(c.Request.Context(), vendor); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, vendor)
}

// AddProduct handles POST /api/v1/vendors/:vendor_id/products.
func (h *VendorHandler) AddProduct(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid vendor id"))
		return
	}

	var req dto.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	product := &domain.VendorProduct{
		VendorID:    vendorID,
		Name:        req.Name,
		PriceTokens: req.PriceTokens,
		PriceCash:   req.PriceCash,
		Available:   req.Available,
		Stock:       req.Stock,
		Position:    req.Position,
	}
	if err := h.vendorSvc.AddProduct(c.Request.Context(), product); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, product)
}

// ListVendors handles GET /api/v1/events/:event_id/vendors.
func (h *VendorHandler) ListVendors(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid event id"))
		return
	}

	vendors, err := h.vendorSvc.GetVendorsForEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"items": vendors, "count": len(vendors)})
}

// ListInteractions handles GET /api/v1/events/:event_id/interactions.
func (h *VendorHandler) ListInteractions(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid event id"))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	interactions, err := h.interactionRepo.ListForEvent(c.Request.Context(), eventID, limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"items": interactions, "count": len(interactions)})
}
