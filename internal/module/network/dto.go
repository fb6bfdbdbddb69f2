package network

import (
	"time"

	"github.com/finbase/cardbase/internal/domain"
)

// CreateBINRequest represents the input for registering a BIN range.
type CreateBINRequest struct {
	Value    string `json:"value" binding:"required,min=6,max=8,numeric"`
	Brand    string `json:"brand" binding:"required,min=2,max=32"`
	Country  string `json:"country" binding:"omitempty,len=2,uppercase"`
	CardType string `json:"card_type" binding:"omitempty,oneof=debit credit prepaid"`
}

// UpdateBINRequest represents the input for updating a BIN range. The value
// itself is immutable.
type UpdateBINRequest struct {
	Brand    string `json:"brand" binding:"required,min=2,max=32"`
	Country  string `json:"country" binding:"omitempty,len=2,uppercase"`
	CardType string `json:"card_type" binding:"omitempty,oneof=debit credit prepaid"`
}

// BINResponse is the public shape of a BIN range.
type BINResponse struct {
	ID        uint      `json:"id"`
	Value     string    `json:"value"`
	Brand     string    `json:"brand"`
	Country   string    `json:"country"`
	CardType  string    `json:"card_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func binFromCreate(req *CreateBINRequest) *domain.BIN {
	return &domain.BIN{
		Value:    req.Value,
		Brand:    req.Brand,
		Country:  req.Country,
		CardType: req.CardType,
	}
}

func binFromUpdate(req *UpdateBINRequest) *domain.BIN {
	return &domain.BIN{
		Brand:    req.Brand,
		Country:  req.Country,
		CardType: req.CardType,
	}
}

func binToResponse(b *domain.BIN) BINResponse {
	return BINResponse{
		ID:        b.ID,
		Value:     b.Value,
		Brand:     b.Brand,
		Country:   b.Country,
		CardType:  b.CardType,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// CreateNetworkRequest represents the input for registering a card scheme.
type CreateNetworkRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
	Code string `json:"code" binding:"required,min=2,max=16"`
}

// UpdateNetworkRequest represents the input for updating a card scheme.
type UpdateNetworkRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=64"`
	Code   string `json:"code" binding:"required,min=2,max=16"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// NetworkResponse is the public shape of a card scheme.
type NetworkResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func networkFromCreate(req *CreateNetworkRequest) *domain.Network {
	return &domain.Network{Name: req.Name, Code: req.Code, Status: "active"}
}

func networkFromUpdate(req *UpdateNetworkRequest) *domain.Network {
	return &domain.Network{Name: req.Name, Code: req.Code, Status: req.Status}
}

func networkToResponse(n *domain.Network) NetworkResponse {
	return NetworkResponse{
		ID:        n.ID,
		Name:      n.Name,
		Code:      n.Code,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// CreateGatewayRequest represents the input for registering a payment gateway.
type CreateGatewayRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=64"`
	Endpoint string `json:"endpoint" binding:"required,url,max=255"`
}

// UpdateGatewayRequest represents the input for updating a payment gateway.
type UpdateGatewayRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=64"`
	Endpoint string `json:"endpoint" binding:"required,url,max=255"`
	Status   string `json:"status" binding:"required,oneof=active inactive"`
}

// GatewayResponse is the public shape of a payment gateway.
type GatewayResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Endpoint  string    `json:"endpoint"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func gatewayFromCreate(req *CreateGatewayRequest) *domain.Gateway {
	return &domain.Gateway{Name: req.Name, Endpoint: req.Endpoint, Status: "active"}
}

func gatewayFromUpdate(req *UpdateGatewayRequest) *domain.Gateway {
	return &domain.Gateway{Name: req.Name, Endpoint: req.Endpoint, Status: req.Status}
}

func gatewayToResponse(g *domain.Gateway) GatewayResponse {
	return GatewayResponse{
		ID:        g.ID,
		Name:      g.Name,
		Endpoint:  g.Endpoint,
		Status:    g.Status,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// CreateAcquirerRequest represents the input for registering an acquirer.
type CreateAcquirerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=64"`
	Country string `json:"country" binding:"omitempty,len=2,uppercase"`
}

// UpdateAcquirerRequest represents the input for updating an acquirer.
type UpdateAcquirerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=64"`
	Country string `json:"country" binding:"omitempty,len=2,uppercase"`
	Status  string `json:"status" binding:"required,oneof=active inactive"`
}

// AcquirerResponse is the public shape of an acquirer.
type AcquirerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func acquirerFromCreate(req *CreateAcquirerRequest) *domain.Acquirer {
	return &domain.Acquirer{Name: req.Name, Country: req.Country, Status: "active"}
}

func acquirerFromUpdate(req *UpdateAcquirerRequest) *domain.Acquirer {
	return &domain.Acquirer{Name: req.Name, Country: req.Country, Status: req.Status}
}

func acquirerToResponse(a *domain.Acquirer) AcquirerResponse {
	return AcquirerResponse{
		ID:        a.ID,
		Name:      a.Name,
		Country:   a.Country,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
