// Package card implements the card resource and its tokenized counterparts:
// virtual cards and physical card orders, both scoped under a card.
package card

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
)

// Module wires the card, virtual card, and physical card resources.
type Module struct {
	cards    *crud.Handler[domain.Card, *domain.Card, CreateCardRequest, UpdateCardRequest, CardResponse]
	virtual  *crud.Handler[domain.VirtualCard, *domain.VirtualCard, CreateVirtualCardRequest, UpdateVirtualCardRequest, VirtualCardResponse]
	physical *crud.Handler[domain.PhysicalCard, *domain.PhysicalCard, CreatePhysicalCardRequest, UpdatePhysicalCardRequest, PhysicalCardResponse]
}

// NewModule builds the repository, service, and handler chain for each card
// resource. Panics if db is nil.
func NewModule(db *gorm.DB) *Module {
	if db == nil {
		panic("card.NewModule: db must not be nil")
	}

	cardRepo := crud.NewRepository[domain.Card](db, crud.Options{
		SortFields:   []string{"id", "cardholder_name", "expiry_year", "status", "created_at"},
		FilterFields: []string{"token", "cardholder_name", "last4", "currency", "status"},
		UpdateFields: []string{"cardholder_name", "currency", "status", "updated_at"},
	})
	cards := crud.NewHandler(
		crud.NewService(cardRepo),
		cardFromCreate, cardFromUpdate, cardToResponse,
		"",
	).WithIDParam("cardId")

	virtualRepo := crud.NewRepository[domain.VirtualCard](db, crud.Options{
		OwnerColumn:  "card_id",
		SortFields:   []string{"id", "label", "status", "expires_at", "created_at"},
		FilterFields: []string{"token", "label", "status"},
		UpdateFields: []string{"label", "status", "expires_at", "updated_at"},
	})
	virtual := crud.NewHandler(
		crud.NewService(virtualRepo),
		virtualFromCreate, virtualFromUpdate, virtualToResponse,
		"cardId",
	).WithIDParam("virtualCardId")

	physicalRepo := crud.NewRepository[domain.PhysicalCard](db, crud.Options{
		OwnerColumn:  "card_id",
		SortFields:   []string{"id", "shipping_status", "created_at"},
		FilterFields: []string{"embossed_name", "shipping_status", "tracking_number"},
		UpdateFields: []string{"embossed_name", "shipping_status", "tracking_number", "updated_at"},
	})
	physical := crud.NewHandler(
		crud.NewService(physicalRepo),
		physicalFromCreate, physicalFromUpdate, physicalToResponse,
		"cardId",
	).WithIDParam("physicalCardId")

	return &Module{cards: cards, virtual: virtual, physical: physical}
}

// RegisterRoutes registers the card API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/cards", m.cards.Create)
	api.GET("/cards", m.cards.List)
	api.POST("/cards/filter", m.cards.Filter)
	api.GET("/cards/:cardId", m.cards.Get)
	api.PUT("/cards/:cardId", m.cards.Update)
	api.DELETE("/cards/:cardId", m.cards.Delete)

	api.POST("/cards/:cardId/virtual-cards", m.virtual.Create)
	api.GET("/cards/:cardId/virtual-cards", m.virtual.List)
	api.GET("/cards/:cardId/virtual-cards/:virtualCardId", m.virtual.Get)
	api.PUT("/cards/:cardId/virtual-cards/:virtualCardId", m.virtual.Update)
	api.DELETE("/cards/:cardId/virtual-cards/:virtualCardId", m.virtual.Delete)

	api.POST("/cards/:cardId/physical-cards", m.physical.Create)
	api.GET("/cards/:cardId/physical-cards", m.physical.List)
	api.GET("/cards/:cardId/physical-cards/:physicalCardId", m.physical.Get)
	api.PUT("/cards/:cardId/physical-cards/:physicalCardId", m.physical.Update)
	api.DELETE("/cards/:cardId/physical-cards/:physicalCardId", m.physical.Delete)
}
