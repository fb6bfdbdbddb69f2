// Package pricing implements the pricing resources: interest schemes and
// promotions.
package pricing

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
)

// Module wires the interest and promotion resources.
type Module struct {
	interests  *crud.Handler[domain.Interest, *domain.Interest, CreateInterestRequest, UpdateInterestRequest, InterestResponse]
	promotions *crud.Handler[domain.Promotion, *domain.Promotion, CreatePromotionRequest, UpdatePromotionRequest, PromotionResponse]
}

// NewModule builds the repository, service, and handler chain for each
// pricing resource. Panics if db is nil.
func NewModule(db *gorm.DB) *Module {
	if db == nil {
		panic("pricing.NewModule: db must not be nil")
	}

	interestRepo := crud.NewRepository[domain.Interest](db, crud.Options{
		SortFields:   []string{"id", "name", "rate_percent", "status", "created_at"},
		FilterFields: []string{"name", "compound_period", "status"},
		UpdateFields: []string{"name", "rate_percent", "compound_period", "status", "updated_at"},
	})
	interests := crud.NewHandler(
		crud.NewService(interestRepo),
		interestFromCreate, interestFromUpdate, interestToResponse,
		"",
	)

	promotionRepo := crud.NewRepository[domain.Promotion](db, crud.Options{
		SortFields:   []string{"id", "name", "code", "starts_at", "ends_at", "created_at"},
		FilterFields: []string{"name", "code", "status"},
		UpdateFields: []string{"name", "discount_percent", "starts_at", "ends_at", "status", "updated_at"},
	})
	promotions := crud.NewHandler(
		crud.NewService(promotionRepo),
		promotionFromCreate, promotionFromUpdate, promotionToResponse,
		"",
	)

	return &Module{interests: interests, promotions: promotions}
}

// RegisterRoutes registers the pricing API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/interests", m.interests.Create)
	api.GET("/interests", m.interests.List)
	api.GET("/interests/:id", m.interests.Get)
	api.PUT("/interests/:id", m.interests.Update)
	api.DELETE("/interests/:id", m.interests.Delete)

	api.POST("/promotions", m.promotions.Create)
	api.GET("/promotions", m.promotions.List)
	api.GET("/promotions/:id", m.promotions.Get)
	api.PUT("/promotions/:id", m.promotions.Update)
	api.DELETE("/promotions/:id", m.promotions.Delete)
}
