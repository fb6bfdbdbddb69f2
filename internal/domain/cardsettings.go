package domain

// CardConfiguration is a per-card key/value switch (e.g. contactless,
// international usage, online payments).
type CardConfiguration struct {
	BaseModel
	CardID      uint   `gorm:"index;not null" json:"card_id"`
	ConfigKey   string `gorm:"size:64;not null" json:"config_key"`
	ConfigValue bool   `gorm:"not null" json:"config_value"`
	Category    string `gorm:"size:32" json:"category"`
}

func (c *CardConfiguration) OwnerID() uint      { return c.CardID }
func (c *CardConfiguration) SetOwnerID(id uint) { c.CardID = id }

// CardLimit caps spending on a card for a given period. CurrentUsage is
// advanced by posted transactions and reset out of band by the issuer.
type CardLimit struct {
	BaseModel
	CardID       uint    `gorm:"index;not null" json:"card_id"`
	LimitType    string  `gorm:"size:32;not null" json:"limit_type"`
	LimitAmount  float64 `gorm:"type:decimal(14,2);not null" json:"limit_amount"`
	CurrentUsage float64 `gorm:"type:decimal(14,2);not null;default:0" json:"current_usage"`
	Period       string  `gorm:"size:16;not null" json:"period"`
}

func (l *CardLimit) OwnerID() uint      { return l.CardID }
func (l *CardLimit) SetOwnerID(id uint) { l.CardID = id }

// CardSecuritySetting is a per-card security toggle (3-D Secure, magstripe,
// ATM withdrawals) applied per channel.
type CardSecuritySetting struct {
	BaseModel
	CardID     uint   `gorm:"index;not null" json:"card_id"`
	SettingKey string `gorm:"size:64;not null" json:"setting_key"`
	Enabled    bool   `gorm:"not null" json:"enabled"`
	Channel    string `gorm:"size:32" json:"channel"`
}

func (s *CardSecuritySetting) OwnerID() uint      { return s.CardID }
func (s *CardSecuritySetting) SetOwnerID(id uint) { s.CardID = id }
