package cardsettings

import (
	"time"

	"github.com/finbase/cardbase/internal/domain"
)

// CreateConfigurationRequest represents the input for creating a per-card
// configuration switch.
type CreateConfigurationRequest struct {
	ConfigKey   string `json:"config_key" binding:"required,min=2,max=64"`
	ConfigValue *bool  `json:"config_value" binding:"required"`
	Category    string `json:"category" binding:"max=32"`
}

// UpdateConfigurationRequest represents the input for updating a configuration
// switch.
type UpdateConfigurationRequest struct {
	ConfigKey   string `json:"config_key" binding:"required,min=2,max=64"`
	ConfigValue *bool  `json:"config_value" binding:"required"`
	Category    string `json:"category" binding:"max=32"`
}

// ConfigurationResponse is the public shape of a card configuration.
type ConfigurationResponse struct {
	ID          uint      `json:"id"`
	CardID      uint      `json:"card_id"`
	ConfigKey   string    `json:"config_key"`
	ConfigValue bool      `json:"config_value"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func configurationFromCreate(req *CreateConfigurationRequest) *domain.CardConfiguration {
	return &domain.CardConfiguration{
		ConfigKey:   req.ConfigKey,
		ConfigValue: *req.ConfigValue,
		Category:    req.Category,
	}
}

func configurationFromUpdate(req *UpdateConfigurationRequest) *domain.CardConfiguration {
	return &domain.CardConfiguration{
		ConfigKey:   req.ConfigKey,
		ConfigValue: *req.ConfigValue,
		Category:    req.Category,
	}
}

func configurationToResponse(c *domain.CardConfiguration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:          c.ID,
		CardID:      c.CardID,
		ConfigKey:   c.ConfigKey,
		ConfigValue: c.ConfigValue,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateLimitRequest represents the input for creating a spending limit on a
// card.
type CreateLimitRequest struct {
	LimitType   string  `json:"limit_type" binding:"required,min=2,max=32"`
	LimitAmount float64 `json:"limit_amount" binding:"required,gt=0"`
	Period      string  `json:"period" binding:"required,oneof=daily weekly monthly yearly"`
}

// UpdateLimitRequest represents the input for updating a spending limit.
// CurrentUsage is advanced by posted transactions, not through this endpoint.
type UpdateLimitRequest struct {
	LimitType   string  `json:"limit_type" binding:"required,min=2,max=32"`
	LimitAmount float64 `json:"limit_amount" binding:"required,gt=0"`
	Period      string  `json:"period" binding:"required,oneof=daily weekly monthly yearly"`
}

// LimitResponse is the public shape of a card limit.
type LimitResponse struct {
	ID           uint      `json:"id"`
	CardID       uint      `json:"card_id"`
	LimitType    string    `json:"limit_type"`
	LimitAmount  float64   `json:"limit_amount"`
	CurrentUsage float64   `json:"current_usage"`
	Period       string    `json:"period"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func limitFromCreate(req *CreateLimitRequest) *domain.CardLimit {
	return &domain.CardLimit{
		LimitType:   req.LimitType,
		LimitAmount: req.LimitAmount,
		Period:      req.Period,
	}
}

func limitFromUpdate(req *UpdateLimitRequest) *domain.CardLimit {
	return &domain.CardLimit{
		LimitType:   req.LimitType,
		LimitAmount: req.LimitAmount,
		Period:      req.Period,
	}
}

func limitToResponse(l *domain.CardLimit) LimitResponse {
	return LimitResponse{
		ID:           l.ID,
		CardID:       l.CardID,
		LimitType:    l.LimitType,
		LimitAmount:  l.LimitAmount,
		CurrentUsage: l.CurrentUsage,
		Period:       l.Period,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// CreateSecuritySettingRequest represents the input for creating a per-card
// security toggle.
type CreateSecuritySettingRequest struct {
	SettingKey string `json:"setting_key" binding:"required,min=2,max=64"`
	Enabled    *bool  `json:"enabled" binding:"required"`
	Channel    string `json:"channel" binding:"max=32"`
}

// UpdateSecuritySettingRequest represents the input for updating a security
// toggle.
type UpdateSecuritySettingRequest struct {
	SettingKey string `json:"setting_key" binding:"required,min=2,max=64"`
	Enabled    *bool  `json:"enabled" binding:"required"`
	Channel    string `json:"channel" binding:"max=32"`
}

// SecuritySettingResponse is the public shape of a card security setting.
type SecuritySettingResponse struct {
	ID         uint      `json:"id"`
	CardID     uint      `json:"card_id"`
	SettingKey string    `json:"setting_key"`
	Enabled    bool      `json:"enabled"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func securityFromCreate(req *CreateSecuritySettingRequest) *domain.CardSecuritySetting {
	return &domain.CardSecuritySetting{
		SettingKey: req.SettingKey,
		Enabled:    *req.Enabled,
		Channel:    req.Channel,
	}
}

func securityFromUpdate(req *UpdateSecuritySettingRequest) *domain.CardSecuritySetting {
	return &domain.CardSecuritySetting{
		SettingKey: req.SettingKey,
		Enabled:    *req.Enabled,
		Channel:    req.Channel,
	}
}

func securityToResponse(s *domain.CardSecuritySetting) SecuritySettingResponse {
	return SecuritySettingResponse{
		ID:         s.ID,
		CardID:     s.CardID,
		SettingKey: s.SettingKey,
		Enabled:    s.Enabled,
		Channel:    s.Channel,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
