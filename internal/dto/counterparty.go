package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateCounterpartyRequest creates a source of income or an expense category.
type CreateCounterpartyRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateCounterpartyRequest renames or re-describes a source of income or category.
type UpdateCounterpartyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// CounterpartyResponse defines the data returned for a source of income or category.
type CounterpartyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToCounterpartyResponse(cp *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:            cp.CounterpartyID,
		Name:          cp.Name,
		Description:   cp.Description,
		CreatedAt:     cp.CreatedAt,
		LastUpdatedAt: cp.LastUpdatedAt,
	}
}

func ToListCounterpartyResponse(cps []domain.Counterparty) []CounterpartyResponse {
	res := make([]CounterpartyResponse, len(cps))
	for i := range cps {
		res[i] = ToCounterpartyResponse(&cps[i])
	}
	return res
}
