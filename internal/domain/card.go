package domain

import "time"

// Card statuses. A card is created inactive and activated explicitly.
const (
	CardStatusInactive = "inactive"
	CardStatusActive   = "active"
	CardStatusBlocked  = "blocked"
	CardStatusExpired  = "expired"
)

// Card represents an issued payment card. The PAN itself is never stored:
// Token is the opaque public reference and Last4 is kept for display.
type Card struct {
	BaseModel
	Token          string `gorm:"size:36;uniqueIndex;not null" json:"token"`
	CardholderName string `gorm:"size:100;not null" json:"cardholder_name"`
	Last4          string `gorm:"size:4;not null" json:"last4"`
	ExpiryMonth    int    `gorm:"not null" json:"expiry_month"`
	ExpiryYear     int    `gorm:"not null" json:"expiry_year"`
	Currency       string `gorm:"size:3;not null" json:"currency"`
	Status         string `gorm:"size:20;not null;default:inactive" json:"status"`
}

// VirtualCard is a tokenized counterpart of a card, scoped to its card.
type VirtualCard struct {
	BaseModel
	CardID    uint      `gorm:"index;not null" json:"card_id"`
	Token     string    `gorm:"size:36;uniqueIndex;not null" json:"token"`
	Label     string    `gorm:"size:100" json:"label"`
	Status    string    `gorm:"size:20;not null;default:active" json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OwnerID returns the owning card id.
func (v *VirtualCard) OwnerID() uint { return v.CardID }

// SetOwnerID sets the owning card id.
func (v *VirtualCard) SetOwnerID(id uint) { v.CardID = id }

// PhysicalCard tracks the production and shipment of the plastic for a card.
type PhysicalCard struct {
	BaseModel
	CardID         uint   `gorm:"index;not null" json:"card_id"`
	EmbossedName   string `gorm:"size:100;not null" json:"embossed_name"`
	ShippingStatus string `gorm:"size:20;not null;default:pending" json:"shipping_status"`
	TrackingNumber string `gorm:"size:64" json:"tracking_number"`
}

func (p *PhysicalCard) OwnerID() uint      { return p.CardID }
func (p *PhysicalCard) SetOwnerID(id uint) { p.CardID = id }
