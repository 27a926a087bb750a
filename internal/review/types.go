package review

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const reviewResource = "reviews"

// CreateReviewRequest represents the payload for publishing a review
type CreateReviewRequest struct {
	GuestID uuid.UUID `json:"guestId" binding:"required"`
	Rating  int       `json:"rating" binding:"required"`
	Comment string    `json:"comment"`
}

// FilterOptions represents the query options for listing reviews
type FilterOptions struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (o *FilterOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 20
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
}

// PaginatedReviews represents one page of a listing's reviews
type PaginatedReviews struct {
	Reviews []Review `json:"reviews"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

// PropertyRating represents the aggregate rating of a listing
type PropertyRating struct {
	PropertyID uuid.UUID       `json:"propertyId"`
	Average    decimal.Decimal `json:"average"`
	Count      int64           `json:"count"`
}
