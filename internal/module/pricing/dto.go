package pricing

import (
	"time"

	"github.com/finbase/cardbase/internal/domain"
)

// CreateInterestRequest represents the input for creating an interest scheme.
type CreateInterestRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=64"`
	RatePercent    float64 `json:"rate_percent" binding:"required,gt=0,lte=100"`
	CompoundPeriod string  `json:"compound_period" binding:"required,oneof=daily monthly yearly"`
}

// UpdateInterestRequest represents the input for updating an interest scheme.
type UpdateInterestRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=64"`
	RatePercent    float64 `json:"rate_percent" binding:"required,gt=0,lte=100"`
	CompoundPeriod string  `json:"compound_period" binding:"required,oneof=daily monthly yearly"`
	Status         string  `json:"status" binding:"required,oneof=active inactive"`
}

// InterestResponse is the public shape of an interest scheme.
type InterestResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	RatePercent    float64   `json:"rate_percent"`
	CompoundPeriod string    `json:"compound_period"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func interestFromCreate(req *CreateInterestRequest) *domain.Interest {
	return &domain.Interest{
		Name:           req.Name,
		RatePercent:    req.RatePercent,
		CompoundPeriod: req.CompoundPeriod,
		Status:         "active",
	}
}

func interestFromUpdate(req *UpdateInterestRequest) *domain.Interest {
	return &domain.Interest{
		Name:           req.Name,
		RatePercent:    req.RatePercent,
		CompoundPeriod: req.CompoundPeriod,
		Status:         req.Status,
	}
}

func interestToResponse(i *domain.Interest) InterestResponse {
	return InterestResponse{
		ID:             i.ID,
		Name:           i.Name,
		RatePercent:    i.RatePercent,
		CompoundPeriod: i.CompoundPeriod,
		Status:         i.Status,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// CreatePromotionRequest represents the input for creating a promotion.
type CreatePromotionRequest struct {
	Name            string    `json:"name" binding:"required,min=2,max=100"`
	Code            string    `json:"code" binding:"required,min=2,max=32,alphanum"`
	DiscountPercent float64   `json:"discount_percent" binding:"required,gt=0,lte=100"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	EndsAt          time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
}

// UpdatePromotionRequest represents the input for updating a promotion. The
// code is immutable once issued.
type UpdatePromotionRequest struct {
	Name            string    `json:"name" binding:"required,min=2,max=100"`
	DiscountPercent float64   `json:"discount_percent" binding:"required,gt=0,lte=100"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	EndsAt          time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
	Status          string    `json:"status" binding:"required,oneof=active inactive"`
}

// PromotionResponse is the public shape of a promotion.
type PromotionResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func promotionFromCreate(req *CreatePromotionRequest) *domain.Promotion {
	return &domain.Promotion{
		Name:            req.Name,
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Status:          "active",
	}
}

func promotionFromUpdate(req *UpdatePromotionRequest) *domain.Promotion {
	return &domain.Promotion{
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Status:          req.Status,
	}
}

func promotionToResponse(p *domain.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              p.ID,
		Name:            p.Name,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		StartsAt:        p.StartsAt,
		EndsAt:          p.EndsAt,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
