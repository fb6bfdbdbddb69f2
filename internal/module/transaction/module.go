// Package transaction implements the transaction resource under a card,
// including limit reservation on create and PDF statement export.
package transaction

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
)

// Module wires the transaction resource.
type Module struct {
	handler *Handler
	generic *crud.Handler[domain.Transaction, *domain.Transaction, CreateTransactionRequest, UpdateTransactionRequest, TransactionResponse]
}

// NewModule builds the repository, service, and handler chain for
// transactions. Panics if db is nil.
func NewModule(db *gorm.DB) *Module {
	if db == nil {
		panic("transaction.NewModule: db must not be nil")
	}

	repo := crud.NewRepository[domain.Transaction](db, crud.Options{
		OwnerColumn:  "card_id",
		SortFields:   []string{"id", "amount", "status", "posted_at", "created_at"},
		FilterFields: []string{"reference", "currency", "merchant_name", "status"},
		UpdateFields: []string{"merchant_name", "status", "metadata", "posted_at", "updated_at"},
	})
	crudSvc := crud.NewService(repo)
	svc := NewService(db, crudSvc)

	generic := crud.NewHandler(
		crudSvc,
		fromCreate, fromUpdate, toResponse,
		"cardId",
	).WithIDParam("transactionId")

	return &Module{handler: NewHandler(svc), generic: generic}
}

// RegisterRoutes registers the transaction API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/cards/:cardId/transactions", m.handler.Create)
	api.GET("/cards/:cardId/transactions", m.generic.List)
	api.POST("/cards/:cardId/transactions/filter", m.generic.Filter)
	api.GET("/cards/:cardId/transactions/statement", m.handler.Statement)
	api.GET("/cards/:cardId/transactions/:transactionId", m.generic.Get)
	api.PUT("/cards/:cardId/transactions/:transactionId", m.generic.Update)
	api.DELETE("/cards/:cardId/transactions/:transactionId", m.generic.Delete)
}
