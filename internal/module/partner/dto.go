package partner

import (
	"time"

	"gorm.io/datatypes"

	"github.com/finbase/cardbase/internal/domain"
)

// CreateProviderRequest represents the input for registering an external card
// provider. Settings is provider-specific configuration stored verbatim.
type CreateProviderRequest struct {
	Name     string         `json:"name" binding:"required,min=2,max=64"`
	Kind     string         `json:"kind" binding:"required,oneof=processor tokenization fulfilment"`
	Settings datatypes.JSON `json:"settings"`
}

// UpdateProviderRequest represents the input for updating a provider.
type UpdateProviderRequest struct {
	Name     string         `json:"name" binding:"required,min=2,max=64"`
	Kind     string         `json:"kind" binding:"required,oneof=processor tokenization fulfilment"`
	Status   string         `json:"status" binding:"required,oneof=active inactive"`
	Settings datatypes.JSON `json:"settings"`
}

// ProviderResponse is the public shape of a provider.
type ProviderResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Status    string         `json:"status"`
	Settings  datatypes.JSON `json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func providerFromCreate(req *CreateProviderRequest) *domain.Provider {
	return &domain.Provider{
		Name:     req.Name,
		Kind:     req.Kind,
		Status:   "active",
		Settings: req.Settings,
	}
}

func providerFromUpdate(req *UpdateProviderRequest) *domain.Provider {
	return &domain.Provider{
		Name:     req.Name,
		Kind:     req.Kind,
		Status:   req.Status,
		Settings: req.Settings,
	}
}

func providerToResponse(p *domain.Provider) ProviderResponse {
	return ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		Status:    p.Status,
		Settings:  p.Settings,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// CreateProgramRequest represents the input for creating a card program.
type CreateProgramRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=64"`
	Code     string `json:"code" binding:"required,min=2,max=16"`
	Currency string `json:"currency" binding:"required,len=3,uppercase"`
}

// UpdateProgramRequest represents the input for updating a card program.
type UpdateProgramRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=64"`
	Code     string `json:"code" binding:"required,min=2,max=16"`
	Currency string `json:"currency" binding:"required,len=3,uppercase"`
	Status   string `json:"status" binding:"required,oneof=active inactive"`
}

// ProgramResponse is the public shape of a card program.
type ProgramResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func programFromCreate(req *CreateProgramRequest) *domain.Program {
	return &domain.Program{Name: req.Name, Code: req.Code, Currency: req.Currency, Status: "active"}
}

func programFromUpdate(req *UpdateProgramRequest) *domain.Program {
	return &domain.Program{Name: req.Name, Code: req.Code, Currency: req.Currency, Status: req.Status}
}

func programToResponse(p *domain.Program) ProgramResponse {
	return ProgramResponse{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Currency:  p.Currency,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// CreateMerchantRequest represents the input for registering a merchant.
type CreateMerchantRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	MCC     string `json:"mcc" binding:"required,len=4,numeric"`
	Country string `json:"country" binding:"omitempty,len=2,uppercase"`
}

// UpdateMerchantRequest represents the input for updating a merchant.
type UpdateMerchantRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	MCC     string `json:"mcc" binding:"required,len=4,numeric"`
	Country string `json:"country" binding:"omitempty,len=2,uppercase"`
	Status  string `json:"status" binding:"required,oneof=active suspended closed"`
}

// MerchantResponse is the public shape of a merchant.
type MerchantResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	MCC       string    `json:"mcc"`
	Country   string    `json:"country"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func merchantFromCreate(req *CreateMerchantRequest) *domain.Merchant {
	return &domain.Merchant{Name: req.Name, MCC: req.MCC, Country: req.Country, Status: "active"}
}

func merchantFromUpdate(req *UpdateMerchantRequest) *domain.Merchant {
	return &domain.Merchant{Name: req.Name, MCC: req.MCC, Country: req.Country, Status: req.Status}
}

func merchantToResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		MCC:       m.MCC,
		Country:   m.Country,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateTerminalRequest represents the input for registering a terminal under
// a merchant. The owning merchant id comes from the URL path.
type CreateTerminalRequest struct {
	Serial string `json:"serial" binding:"required,min=4,max=64"`
	Model  string `json:"model" binding:"max=64"`
}

// UpdateTerminalRequest represents the input for updating a terminal. The
// serial is immutable.
type UpdateTerminalRequest struct {
	Model  string `json:"model" binding:"max=64"`
	Status string `json:"status" binding:"required,oneof=active inactive decommissioned"`
}

// TerminalResponse is the public shape of a terminal.
type TerminalResponse struct {
	ID         uint      `json:"id"`
	MerchantID uint      `json:"merchant_id"`
	Serial     string    `json:"serial"`
	Model      string    `json:"model"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func terminalFromCreate(req *CreateTerminalRequest) *domain.Terminal {
	return &domain.Terminal{Serial: req.Serial, Model: req.Model, Status: "active"}
}

func terminalFromUpdate(req *UpdateTerminalRequest) *domain.Terminal {
	return &domain.Terminal{Model: req.Model, Status: req.Status}
}

func terminalToResponse(t *domain.Terminal) TerminalResponse {
	return TerminalResponse{
		ID:         t.ID,
		MerchantID: t.MerchantID,
		Serial:     t.Serial,
		Model:      t.Model,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
