package transaction

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/finbase/cardbase/internal/domain"
)

// CreateTransactionRequest represents the input for recording a transaction
// on a card. The public reference is generated server side. Metadata is
// stored verbatim.
type CreateTransactionRequest struct {
	Amount       float64        `json:"amount" binding:"required,gt=0"`
	Currency     string         `json:"currency" binding:"required,len=3,uppercase"`
	MerchantName string         `json:"merchant_name" binding:"max=100"`
	Status       string         `json:"status" binding:"omitempty,oneof=pending posted"`
	Metadata     datatypes.JSON `json:"metadata"`
	PostedAt     time.Time      `json:"posted_at"`
}

// UpdateTransactionRequest represents the input for updating a transaction.
// Amount, currency, and reference are immutable once recorded; updates move
// the transaction through its lifecycle and correct descriptive fields.
type UpdateTransactionRequest struct {
	MerchantName string         `json:"merchant_name" binding:"max=100"`
	Status       string         `json:"status" binding:"required,oneof=pending posted declined reversed"`
	Metadata     datatypes.JSON `json:"metadata"`
	PostedAt     time.Time      `json:"posted_at"`
}

// TransactionResponse is the public shape of a transaction.
type TransactionResponse struct {
	ID           uint           `json:"id"`
	CardID       uint           `json:"card_id"`
	Reference    string         `json:"reference"`
	Amount       float64        `json:"amount"`
	Currency     string         `json:"currency"`
	MerchantName string         `json:"merchant_name"`
	Status       string         `json:"status"`
	Metadata     datatypes.JSON `json:"metadata"`
	PostedAt     time.Time      `json:"posted_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func fromCreate(req *CreateTransactionRequest) *domain.Transaction {
	status := req.Status
	if status == "" {
		status = domain.TransactionStatusPending
	}
	return &domain.Transaction{
		Reference:    uuid.NewString(),
		Amount:       req.Amount,
		Currency:     req.Currency,
		MerchantName: req.MerchantName,
		Status:       status,
		Metadata:     req.Metadata,
		PostedAt:     req.PostedAt,
	}
}

func fromUpdate(req *UpdateTransactionRequest) *domain.Transaction {
	return &domain.Transaction{
		MerchantName: req.MerchantName,
		Status:       req.Status,
		Metadata:     req.Metadata,
		PostedAt:     req.PostedAt,
	}
}

func toResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		CardID:       t.CardID,
		Reference:    t.Reference,
		Amount:       t.Amount,
		Currency:     t.Currency,
		MerchantName: t.MerchantName,
		Status:       t.Status,
		Metadata:     t.Metadata,
		PostedAt:     t.PostedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
