// Package cardsettings implements the per-card settings resources:
// configuration switches, spending limits, and security toggles.
package cardsettings

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
)

// Module wires the card configuration, limit, and security setting resources.
type Module struct {
	configurations *crud.Handler[domain.CardConfiguration, *domain.CardConfiguration, CreateConfigurationRequest, UpdateConfigurationRequest, ConfigurationResponse]
	limits         *crud.Handler[domain.CardLimit, *domain.CardLimit, CreateLimitRequest, UpdateLimitRequest, LimitResponse]
	security       *crud.Handler[domain.CardSecuritySetting, *domain.CardSecuritySetting, CreateSecuritySettingRequest, UpdateSecuritySettingRequest, SecuritySettingResponse]
}

// NewModule builds the repository, service, and handler chain for each
// settings resource. Panics if db is nil.
func NewModule(db *gorm.DB) *Module {
	if db == nil {
		panic("cardsettings.NewModule: db must not be nil")
	}

	configRepo := crud.NewRepository[domain.CardConfiguration](db, crud.Options{
		OwnerColumn:  "card_id",
		SortFields:   []string{"id", "config_key", "category", "created_at"},
		FilterFields: []string{"config_key", "category"},
		UpdateFields: []string{"config_key", "config_value", "category", "updated_at"},
	})
	configurations := crud.NewHandler(
		crud.NewService(configRepo),
		configurationFromCreate, configurationFromUpdate, configurationToResponse,
		"cardId",
	).WithIDParam("configurationId")

	limitRepo := crud.NewRepository[domain.CardLimit](db, crud.Options{
		OwnerColumn:  "card_id",
		SortFields:   []string{"id", "limit_type", "limit_amount", "period", "created_at"},
		FilterFields: []string{"limit_type", "period"},
		UpdateFields: []string{"limit_type", "limit_amount", "period", "updated_at"},
	})
	limits := crud.NewHandler(
		crud.NewService(limitRepo),
		limitFromCreate, limitFromUpdate, limitToResponse,
		"cardId",
	).WithIDParam("limitId")

	securityRepo := crud.NewRepository[domain.CardSecuritySetting](db, crud.Options{
		OwnerColumn:  "card_id",
		SortFields:   []string{"id", "setting_key", "channel", "created_at"},
		FilterFields: []string{"setting_key", "channel"},
		UpdateFields: []string{"setting_key", "enabled", "channel", "updated_at"},
	})
	security := crud.NewHandler(
		crud.NewService(securityRepo),
		securityFromCreate, securityFromUpdate, securityToResponse,
		"cardId",
	).WithIDParam("settingId")

	return &Module{configurations: configurations, limits: limits, security: security}
}

// RegisterRoutes registers the card settings API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/cards/:cardId/configurations", m.configurations.Create)
	api.GET("/cards/:cardId/configurations", m.configurations.List)
	api.GET("/cards/:cardId/configurations/:configurationId", m.configurations.Get)
	api.PUT("/cards/:cardId/configurations/:configurationId", m.configurations.Update)
	api.DELETE("/cards/:cardId/configurations/:configurationId", m.configurations.Delete)

	api.POST("/cards/:cardId/limits", m.limits.Create)
	api.GET("/cards/:cardId/limits", m.limits.List)
	api.GET("/cards/:cardId/limits/:limitId", m.limits.Get)
	api.PUT("/cards/:cardId/limits/:limitId", m.limits.Update)
	api.DELETE("/cards/:cardId/limits/:limitId", m.limits.Delete)

	api.POST("/cards/:cardId/security-settings", m.security.Create)
	api.GET("/cards/:cardId/security-settings", m.security.List)
	api.GET("/cards/:cardId/security-settings/:settingId", m.security.Get)
	api.PUT("/cards/:cardId/security-settings/:settingId", m.security.Update)
	api.DELETE("/cards/:cardId/security-settings/:settingId", m.security.Delete)
}
