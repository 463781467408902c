package dto

import "github.com/google/uuid"

// PurchaseRequest is the request body for crediting a wallet after an
// external payment succeeded. PaymentRef is the upstream charge reference
// and doubles as the idempotency anchor.
type PurchaseRequest struct {
	Amount     int64      `json:"amount" binding:"required,gt=0"`
	PaymentRef string     `json:"payment_ref" binding:"required,max=100"`
	EventID    *uuid.UUID `json:"event_id,omitempty"`
}

// SpendRequest is the request body for an app-initiated spend.
type SpendRequest struct {
	VendorID       uuid.UUID  `json:"vendor_id" binding:"required"`
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	Amount         int64      `json:"amount" binding:"required,gt=0"`
	Quantity       int        `json:"quantity,omitempty"`
	EventID        uuid.UUID  `json:"event_id" binding:"required"`
	IdempotencyKey string     `json:"idempotency_key" binding:"required,max=100,safe_id"`
	Description    string     `json:"description,omitempty" binding:"max=255"`
}

// RewardRequest is the request body for crediting bonus tokens to a user.
type RewardRequest struct {
	UserID      uuid.UUID  `json:"user_id" binding:"required"`
	Amount      int64      `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description,omitempty" binding:"max=255"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
}

// DevicePaymentRequest is the request body for a tap-to-pay spend reported
// by a vendor terminal. The user resolves from the device binding.
type DevicePaymentRequest struct {
	DeviceID       string     `json:"device_id" binding:"required,max=64,safe_id"`
	VendorID       uuid.UUID  `json:"vendor_id" binding:"required"`
	Amount         int64      `json:"amount" binding:"required,gt=0"`
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	Quantity       int        `json:"quantity,omitempty"`
	IdempotencyKey string     `json:"idempotency_key,omitempty" binding:"omitempty,max=100,safe_id"`
}

// HandshakeRequest is the request body for a device-to-device handshake.
type HandshakeRequest struct {
	DeviceID     string `json:"device_id" binding:"required,max=64,safe_id"`
	PeerDeviceID string `json:"peer_device_id" binding:"required,max=64,safe_id"`
}

// TapRequest is the request body for a single-device tap event.
type TapRequest struct {
	DeviceID string    `json:"device_id" binding:"required,max=64,safe_id"`
	EventID  uuid.UUID `json:"event_id" binding:"required"`
}

// ProfileSnapshotRequest is the public profile pushed onto a device.
type ProfileSnapshotRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Interests []string `json:"interests" binding:"max=32,dive,max=50"`
	Status    string   `json:"status,omitempty" binding:"max=140"`
}

// AssignDeviceRequest is the request body for (re)binding a device.
type AssignDeviceRequest struct {
	DeviceID string                 `json:"device_id" binding:"required,max=64,safe_id"`
	UserID   uuid.UUID              `json:"user_id" binding:"required"`
	EventID  uuid.UUID              `json:"event_id" binding:"required"`
	Profile  ProfileSnapshotRequest `json:"profile" binding:"required"`
}

// CreateVendorRequest is the request body for registering a vendor.
type CreateVendorRequest struct {
	EventID       uuid.UUID `json:"event_id" binding:"required"`
	Name          string    `json:"name" binding:"required,min=1,max=100"`
	AcceptsTokens bool      `json:"accepts_tokens"`
	ExchangeRate  int64     `json:"exchange_rate" binding:"gte=0"`
}

// AddProductRequest is the request body for adding a product to a vendor.
type AddProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	PriceTokens int64  `json:"price_tokens" binding:"required,gt=0"`
	PriceCash   *int64 `json:"price_cash,omitempty" binding:"omitempty,gt=0"`
	Available   bool   `json:"available"`
	Stock       *int   `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Position    int    `json:"position" binding:"gte=0"`
}
