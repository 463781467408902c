package service

import (
	"context"
	"fmt"
	"time"

	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VendorServiceImpl implements ports.VendorCatalogService.
type VendorServiceImpl struct {
	vendorRepo ports.VendorRepository
	log        zerolog.Logger
}

// NewVendorService creates a new VendorServiceImpl.
func NewVendorService(vendorRepo ports.VendorRepository, log zerolog.Logger) *VendorServiceImpl {
	return &VendorServiceImpl{vendorRepo: vendorRepo, log: log}
}

// CreateVendor registers an on-site vendor for an event.
func (s *VendorServiceImpl) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	if vendor.Name == "" {
		return apperror.Validation("vendor name is required")
	}
	if vendor.EventID == uuid.Nil {
		return apperror.Validation("event_id is required")
	}
	if vendor.ExchangeRate < 0 {
		return apperror.Validation("exchange_rate must not be negative")
	}

	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	vendor.CreatedAt = time.Now().UTC()

	if err := s.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		return apperror.InternalError(fmt.Errorf("create vendor: %w", err))
	}

	s.log.Info().Str("vendor_id", vendor.ID.String()).Str("name", vendor.Name).Msg("vendor created")
	return nil
}

// AddProduct adds a sellable item to a vendor's menu.
func (s *VendorServiceImpl) AddProduct(ctx context.Context, product *domain.VendorProduct) error {
	if product.Name == "" {
		return apperror.Validation("product name is required")
	}
	if product.PriceTokens <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if product.Stock != nil && *product.Stock < 0 {
		return apperror.Validation("stock must not be negative")
	}

	vendor, err := s.vendorRepo.GetVendor(ctx, product.VendorID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get vendor: %w", err))
	}
	if vendor == nil {
		return apperror.ErrNotFound("vendor")
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now().UTC()

	if err := s.vendorRepo.AddProduct(ctx, product); err != nil {
		return apperror.InternalError(fmt.Errorf("add product: %w", err))
	}
	return nil
}

// GetVendorsForEvent returns the event's vendors with their product menus.
func (s *VendorServiceImpl) GetVendorsForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.GetVendorsForEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list vendors: %w", err))
	}
	return vendors, nil
}
