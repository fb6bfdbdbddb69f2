package domain

// BIN is a bank identification number range and its routing attributes.
type BIN struct {
	BaseModel
	Value    string `gorm:"size:8;uniqueIndex;not null" json:"value"`
	Brand    string `gorm:"size:32;not null" json:"brand"`
	Country  string `gorm:"size:2" json:"country"`
	CardType string `gorm:"size:16" json:"card_type"`
}

// Network is a card scheme (e.g. the brand networks cards are issued on).
type Network struct {
	BaseModel
	Name   string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Code   string `gorm:"size:16;not null" json:"code"`
	Status string `gorm:"size:20;not null;default:active" json:"status"`
}

// Gateway is a payment gateway endpoint transactions are routed through.
type Gateway struct {
	BaseModel
	Name     string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Endpoint string `gorm:"size:255;not null" json:"endpoint"`
	Status   string `gorm:"size:20;not null;default:active" json:"status"`
}

// Acquirer is the acquiring institution on the merchant side.
type Acquirer struct {
	BaseModel
	Name    string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Country string `gorm:"size:2" json:"country"`
	Status  string `gorm:"size:20;not null;default:active" json:"status"`
}
