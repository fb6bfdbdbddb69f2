package domain

import "time"

// Interest is an interest scheme applicable to revolving balances.
type Interest struct {
	BaseModel
	Name           string  `gorm:"size:64;uniqueIndex;not null" json:"name"`
	RatePercent    float64 `gorm:"type:decimal(6,3);not null" json:"rate_percent"`
	CompoundPeriod string  `gorm:"size:16;not null" json:"compound_period"`
	Status         string  `gorm:"size:20;not null;default:active" json:"status"`
}

// Promotion is a time-bounded discount or cashback campaign.
type Promotion struct {
	BaseModel
	Name            string    `gorm:"size:100;not null" json:"name"`
	Code            string    `gorm:"size:32;uniqueIndex;not null" json:"code"`
	DiscountPercent float64   `gorm:"type:decimal(5,2);not null" json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Status          string    `gorm:"size:20;not null;default:active" json:"status"`
}
