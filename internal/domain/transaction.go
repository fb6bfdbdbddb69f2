package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction statuses.
const (
	TransactionStatusPending  = "pending"
	TransactionStatusPosted   = "posted"
	TransactionStatusDeclined = "declined"
	TransactionStatusReversed = "reversed"
)

// Transaction is a single card movement. Reference is the opaque public
// identifier handed to external systems; Metadata carries scheme- or
// gateway-specific attributes that this service stores without interpreting.
type Transaction struct {
	BaseModel
	CardID       uint           `gorm:"index;not null" json:"card_id"`
	Reference    string         `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Amount       float64        `gorm:"type:decimal(14,2);not null" json:"amount"`
	Currency     string         `gorm:"size:3;not null" json:"currency"`
	MerchantName string         `gorm:"size:100" json:"merchant_name"`
	Status       string         `gorm:"size:20;not null;default:pending" json:"status"`
	Metadata     datatypes.JSON `json:"metadata"`
	PostedAt     time.Time      `json:"posted_at"`
}

func (t *Transaction) OwnerID() uint      { return t.CardID }
func (t *Transaction) SetOwnerID(id uint) { t.CardID = id }
