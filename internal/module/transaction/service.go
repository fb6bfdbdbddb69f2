package transaction

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/crud"
	"github.com/finbase/cardbase/internal/domain"
	"github.com/finbase/cardbase/internal/pkg"
)

// Service handles the transaction operations that go beyond plain CRUD.
// Recording a transaction also reserves its amount against every spending
// limit on the card, atomically with the insert.
type Service struct {
	db   *gorm.DB
	crud *crud.Service[domain.Transaction, *domain.Transaction]
}

// NewService creates a transaction Service. The crud service handles reads,
// updates, and deletes; creation is transactional and implemented here.
func NewService(db *gorm.DB, c *crud.Service[domain.Transaction, *domain.Transaction]) *Service {
	return &Service{db: db, crud: c}
}

// Create records a transaction on the given card and advances current_usage
// on each of the card's limits by the transaction amount. Both writes happen
// in one database transaction; a missing card reports ErrNotFound. Declined
// transactions do not consume limit headroom.
func (s *Service) Create(ctx context.Context, t *domain.Transaction, cardID uint) (*domain.Transaction, error) {
	var card domain.Card
	if err := s.db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		return nil, mapErr(err)
	}

	t.CardID = cardID
	err := pkg.WithTx(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		if t.Status == domain.TransactionStatusDeclined {
			return nil
		}
		return tx.Model(&domain.CardLimit{}).
			Where("card_id = ?", cardID).
			Update("current_usage", gorm.Expr("current_usage + ?", t.Amount)).Error
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return t, nil
}

// StatementData is the material a card statement is rendered from.
type StatementData struct {
	Card         domain.Card
	Transactions []domain.Transaction
}

// StatementData loads the card and its full transaction history, oldest
// first, for statement rendering.
func (s *Service) StatementData(ctx context.Context, cardID uint) (*StatementData, error) {
	var card domain.Card
	if err := s.db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		return nil, mapErr(err)
	}

	var txs []domain.Transaction
	if err := s.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("posted_at ASC, id ASC").
		Find(&txs).Error; err != nil {
		return nil, mapErr(err)
	}

	return &StatementData{Card: card, Transactions: txs}, nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
