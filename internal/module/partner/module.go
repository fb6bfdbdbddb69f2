// Package partner implements the commercial counterparty resources:
// providers, card programs, merchants, and the terminals scoped under a
// merchant.
package partner

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
)

// Module wires the provider, program, merchant, and terminal resources.
type Module struct {
	providers *crud.Handler[domain.Provider, *domain.Provider, CreateProviderRequest, UpdateProviderRequest, ProviderResponse]
	programs  *crud.Handler[domain.Program, *domain.Program, CreateProgramRequest, UpdateProgramRequest, ProgramResponse]
	merchants *crud.Handler[domain.Merchant, *domain.Merchant, CreateMerchantRequest, UpdateMerchantRequest, MerchantResponse]
	terminals *crud.Handler[domain.Terminal, *domain.Terminal, CreateTerminalRequest, UpdateTerminalRequest, TerminalResponse]
}

// NewModule builds the repository, service, and handler chain for each
// partner resource. Panics if db is nil.
func NewModule(db *gorm.DB) *Module {
	if db == nil {
		panic("partner.NewModule: db must not be nil")
	}

	providerRepo := crud.NewRepository[domain.Provider](db, crud.Options{
		SortFields:   []string{"id", "name", "kind", "status", "created_at"},
		FilterFields: []string{"name", "kind", "status"},
		UpdateFields: []string{"name", "kind", "status", "settings", "updated_at"},
	})
	providers := crud.NewHandler(
		crud.NewService(providerRepo),
		providerFromCreate, providerFromUpdate, providerToResponse,
		"",
	)

	programRepo := crud.NewRepository[domain.Program](db, crud.Options{
		SortFields:   []string{"id", "name", "code", "status", "created_at"},
		FilterFields: []string{"name", "code", "currency", "status"},
		UpdateFields: []string{"name", "code", "currency", "status", "updated_at"},
	})
	programs := crud.NewHandler(
		crud.NewService(programRepo),
		programFromCreate, programFromUpdate, programToResponse,
		"",
	)

	merchantRepo := crud.NewRepository[domain.Merchant](db, crud.Options{
		SortFields:   []string{"id", "name", "mcc", "status", "created_at"},
		FilterFields: []string{"name", "mcc", "country", "status"},
		UpdateFields: []string{"name", "mcc", "country", "status", "updated_at"},
	})
	merchants := crud.NewHandler(
		crud.NewService(merchantRepo),
		merchantFromCreate, merchantFromUpdate, merchantToResponse,
		"",
	).WithIDParam("merchantId")

	terminalRepo := crud.NewRepository[domain.Terminal](db, crud.Options{
		OwnerColumn:  "merchant_id",
		SortFields:   []string{"id", "serial", "status", "created_at"},
		FilterFields: []string{"serial", "model", "status"},
		UpdateFields: []string{"model", "status", "updated_at"},
	})
	terminals := crud.NewHandler(
		crud.NewService(terminalRepo),
		terminalFromCreate, terminalFromUpdate, terminalToResponse,
		"merchantId",
	).WithIDParam("terminalId")

	return &Module{providers: providers, programs: programs, merchants: merchants, terminals: terminals}
}

// RegisterRoutes registers the partner API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/providers", m.providers.Create)
	api.GET("/providers", m.providers.List)
	api.GET("/providers/:id", m.providers.Get)
	api.PUT("/providers/:id", m.providers.Update)
	api.DELETE("/providers/:id", m.providers.Delete)

	api.POST("/programs", m.programs.Create)
	api.GET("/programs", m.programs.List)
	api.GET("/programs/:id", m.programs.Get)
	api.PUT("/programs/:id", m.programs.Update)
	api.DELETE("/programs/:id", m.programs.Delete)

	api.POST("/merchants", m.merchants.Create)
	api.GET("/merchants", m.merchants.List)
	api.GET("/merchants/:merchantId", m.merchants.Get)
	api.PUT("/merchants/:merchantId", m.merchants.Update)
	api.DELETE("/merchants/:merchantId", m.merchants.Delete)

	api.POST("/merchants/:merchantId/terminals", m.terminals.Create)
	api.GET("/merchants/:merchantId/terminals", m.terminals.List)
	api.GET("/merchants/:merchantId/terminals/:terminalId", m.terminals.Get)
	api.PUT("/merchants/:merchantId/terminals/:terminalId", m.terminals.Update)
	api.DELETE("/merchants/:merchantId/terminals/:terminalId", m.terminals.Delete)
}
