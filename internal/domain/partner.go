package domain

import "gorm.io/datatypes"

// Provider is an external card provider (issuer processor, tokenization
// service, fulfilment house). Settings is provider-specific configuration
// stored verbatim.
type Provider struct {
	BaseModel
	Name     string         `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Kind     string         `gorm:"size:32;not null" json:"kind"`
	Status   string         `gorm:"size:20;not null;default:active" json:"status"`
	Settings datatypes.JSON `json:"settings"`
}

// Program is a card program: the commercial envelope cards are issued under.
type Program struct {
	BaseModel
	Name     string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Code     string `gorm:"size:16;not null" json:"code"`
	Currency string `gorm:"size:3;not null" json:"currency"`
	Status   string `gorm:"size:20;not null;default:active" json:"status"`
}

// Merchant is a registered merchant; terminals are scoped under it.
type Merchant struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	MCC     string `gorm:"size:4;not null" json:"mcc"`
	Country string `gorm:"size:2" json:"country"`
	Status  string `gorm:"size:20;not null;default:active" json:"status"`
}

// Terminal is a point-of-sale device owned by a merchant.
type Terminal struct {
	BaseModel
	MerchantID uint   `gorm:"index;not null" json:"merchant_id"`
	Serial     string `gorm:"size:64;uniqueIndex;not null" json:"serial"`
	Model      string `gorm:"size:64" json:"model"`
	Status     string `gorm:"size:20;not null;default:active" json:"status"`
}

func (t *Terminal) OwnerID() uint      { return t.MerchantID }
func (t *Terminal) SetOwnerID(id uint) { t.MerchantID = id }
