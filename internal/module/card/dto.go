package card

import (
	"time"

	"github.com/google/uuid"

	"github.com/finbase/cardbase/internal/domain"
)

// CreateCardRequest represents the input for issuing a new card. The opaque
// token is generated server side; the PAN is never accepted or stored.
type CreateCardRequest struct {
	CardholderName string `json:"cardholder_name" binding:"required,min=2,max=100"`
	Last4          string `json:"last4" binding:"required,len=4,numeric"`
	ExpiryMonth    int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" binding:"required,min=2000,max=2100"`
	Currency       string `json:"currency" binding:"required,len=3,uppercase"`
}

// UpdateCardRequest represents the input for updating an existing card.
// The token, last4, and expiry are immutable after issuance.
type UpdateCardRequest struct {
	CardholderName string `json:"cardholder_name" binding:"required,min=2,max=100"`
	Currency       string `json:"currency" binding:"required,len=3,uppercase"`
	Status         string `json:"status" binding:"required,oneof=inactive active blocked expired"`
}

// CardResponse is the public shape of a card.
type CardResponse struct {
	ID             uint      `json:"id"`
	Token          string    `json:"token"`
	CardholderName string    `json:"cardholder_name"`
	Last4          string    `json:"last4"`
	ExpiryMonth    int       `json:"expiry_month"`
	ExpiryYear     int       `json:"expiry_year"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func cardFromCreate(req *CreateCardRequest) *domain.Card {
	return &domain.Card{
		Token:          uuid.NewString(),
		CardholderName: req.CardholderName,
		Last4:          req.Last4,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		Currency:       req.Currency,
		Status:         domain.CardStatusInactive,
	}
}

func cardFromUpdate(req *UpdateCardRequest) *domain.Card {
	return &domain.Card{
		CardholderName: req.CardholderName,
		Currency:       req.Currency,
		Status:         req.Status,
	}
}

func cardToResponse(c *domain.Card) CardResponse {
	return CardResponse{
		ID:             c.ID,
		Token:          c.Token,
		CardholderName: c.CardholderName,
		Last4:          c.Last4,
		ExpiryMonth:    c.ExpiryMonth,
		ExpiryYear:     c.ExpiryYear,
		Currency:       c.Currency,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// CreateVirtualCardRequest represents the input for creating a virtual card
// under a card. The owning card id comes from the URL path.
type CreateVirtualCardRequest struct {
	Label     string    `json:"label" binding:"max=100"`
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

// UpdateVirtualCardRequest represents the input for updating a virtual card.
type UpdateVirtualCardRequest struct {
	Label     string    `json:"label" binding:"max=100"`
	Status    string    `json:"status" binding:"required,oneof=active suspended closed"`
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

// VirtualCardResponse is the public shape of a virtual card.
type VirtualCardResponse struct {
	ID        uint      `json:"id"`
	CardID    uint      `json:"card_id"`
	Token     string    `json:"token"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func virtualFromCreate(req *CreateVirtualCardRequest) *domain.VirtualCard {
	return &domain.VirtualCard{
		Token:     uuid.NewString(),
		Label:     req.Label,
		Status:    "active",
		ExpiresAt: req.ExpiresAt,
	}
}

func virtualFromUpdate(req *UpdateVirtualCardRequest) *domain.VirtualCard {
	return &domain.VirtualCard{
		Label:     req.Label,
		Status:    req.Status,
		ExpiresAt: req.ExpiresAt,
	}
}

func virtualToResponse(v *domain.VirtualCard) VirtualCardResponse {
	return VirtualCardResponse{
		ID:        v.ID,
		CardID:    v.CardID,
		Token:     v.Token,
		Label:     v.Label,
		Status:    v.Status,
		ExpiresAt: v.ExpiresAt,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// CreatePhysicalCardRequest represents the input for ordering the plastic for
// a card.
type CreatePhysicalCardRequest struct {
	EmbossedName string `json:"embossed_name" binding:"required,min=2,max=100"`
}

// UpdatePhysicalCardRequest represents the input for updating a physical card
// order, typically advancing its shipping state.
type UpdatePhysicalCardRequest struct {
	EmbossedName   string `json:"embossed_name" binding:"required,min=2,max=100"`
	ShippingStatus string `json:"shipping_status" binding:"required,oneof=pending produced shipped delivered returned"`
	TrackingNumber string `json:"tracking_number" binding:"max=64"`
}

// PhysicalCardResponse is the public shape of a physical card order.
type PhysicalCardResponse struct {
	ID             uint      `json:"id"`
	CardID         uint      `json:"card_id"`
	EmbossedName   string    `json:"embossed_name"`
	ShippingStatus string    `json:"shipping_status"`
	TrackingNumber string    `json:"tracking_number"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func physicalFromCreate(req *CreatePhysicalCardRequest) *domain.PhysicalCard {
	return &domain.PhysicalCard{
		EmbossedName:   req.EmbossedName,
		ShippingStatus: "pending",
	}
}

func physicalFromUpdate(req *UpdatePhysicalCardRequest) *domain.PhysicalCard {
	return &domain.PhysicalCard{
		EmbossedName:   req.EmbossedName,
		ShippingStatus: req.ShippingStatus,
		TrackingNumber: req.TrackingNumber,
	}
}

func physicalToResponse(p *domain.PhysicalCard) PhysicalCardResponse {
	return PhysicalCardResponse{
		ID:             p.ID,
		CardID:         p.CardID,
		EmbossedName:   p.EmbossedName,
		ShippingStatus: p.ShippingStatus,
		TrackingNumber: p.TrackingNumber,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
