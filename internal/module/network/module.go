// Package network implements the routing reference resources: BIN ranges,
// card schemes, payment gateways, and acquirers.
package network

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
)

// Module wires the BIN, network, gateway, and acquirer resources.
type Module struct {
	bins      *crud.Handler[domain.BIN, *domain.BIN, CreateBINRequest, UpdateBINRequest, BINResponse]
	networks  *crud.Handler[domain.Network, *domain.Network, CreateNetworkRequest, UpdateNetworkRequest, NetworkResponse]
	gateways  *crud.Handler[domain.Gateway, *domain.Gateway, CreateGatewayRequest, UpdateGatewayRequest, GatewayResponse]
	acquirers *crud.Handler[domain.Acquirer, *domain.Acquirer, CreateAcquirerRequest, UpdateAcquirerRequest, AcquirerResponse]
}

// NewModule builds the repository, service, and handler chain for each
// routing reference resource. Panics if db is nil.
func NewModule(db *gorm.DB) *Module {
	if db == nil {
		panic("network.NewModule: db must not be nil")
	}

	binRepo := crud.NewRepository[domain.BIN](db, crud.Options{
		SortFields:   []string{"id", "value", "brand", "created_at"},
		FilterFields: []string{"value", "brand", "country", "card_type"},
		UpdateFields: []string{"brand", "country", "card_type", "updated_at"},
	})
	bins := crud.NewHandler(
		crud.NewService(binRepo),
		binFromCreate, binFromUpdate, binToResponse,
		"",
	)

	networkRepo := crud.NewRepository[domain.Network](db, crud.Options{
		SortFields:   []string{"id", "name", "code", "status", "created_at"},
		FilterFields: []string{"name", "code", "status"},
		UpdateFields: []string{"name", "code", "status", "updated_at"},
	})
	networks := crud.NewHandler(
		crud.NewService(networkRepo),
		networkFromCreate, networkFromUpdate, networkToResponse,
		"",
	)

	gatewayRepo := crud.NewRepository[domain.Gateway](db, crud.Options{
		SortFields:   []string{"id", "name", "status", "created_at"},
		FilterFields: []string{"name", "status"},
		UpdateFields: []string{"name", "endpoint", "status", "updated_at"},
	})
	gateways := crud.NewHandler(
		crud.NewService(gatewayRepo),
		gatewayFromCreate, gatewayFromUpdate, gatewayToResponse,
		"",
	)

	acquirerRepo := crud.NewRepository[domain.Acquirer](db, crud.Options{
		SortFields:   []string{"id", "name", "country", "status", "created_at"},
		FilterFields: []string{"name", "country", "status"},
		UpdateFields: []string{"name", "country", "status", "updated_at"},
	})
	acquirers := crud.NewHandler(
		crud.NewService(acquirerRepo),
		acquirerFromCreate, acquirerFromUpdate, acquirerToResponse,
		"",
	)

	return &Module{bins: bins, networks: networks, gateways: gateways, acquirers: acquirers}
}

// RegisterRoutes registers the routing reference API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/bins", m.bins.Create)
	api.GET("/bins", m.bins.List)
	api.GET("/bins/:id", m.bins.Get)
	api.PUT("/bins/:id", m.bins.Update)
	api.DELETE("/bins/:id", m.bins.Delete)

	api.POST("/networks", m.networks.Create)
	api.GET("/networks", m.networks.List)
	api.GET("/networks/:id", m.networks.Get)
	api.PUT("/networks/:id", m.networks.Update)
	api.DELETE("/networks/:id", m.networks.Delete)

	api.POST("/gateways", m.gateways.Create)
	api.GET("/gateways", m.gateways.List)
	api.GET("/gateways/:id", m.gateways.Get)
	api.PUT("/gateways/:id", m.gateways.Update)
	api.DELETE("/gateways/:id", m.gateways.Delete)

	api.POST("/acquirers", m.acquirers.Create)
	api.GET("/acquirers", m.acquirers.List)
	api.GET("/acquirers/:id", m.acquirers.Get)
	api.PUT("/acquirers/:id", m.acquirers.Update)
	api.DELETE("/acquirers/:id", m.acquirers.Delete)
}
