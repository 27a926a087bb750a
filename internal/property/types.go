package property

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cache key resource for listings
const propertyResource = "properties"

// CreatePropertyRequest represents the payload for creating a listing
type CreatePropertyRequest struct {
	HostID        uuid.UUID       `json:"hostId" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	City          string          `json:"city" binding:"required"`
	Address       string          `json:"address"`
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required"`
	MaxGuests     int             `json:"maxGuests" binding:"required"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Amenities     []string        `json:"amenities"`
}

// UpdatePropertyRequest represents the payload for updating a listing
type UpdatePropertyRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	City          string          `json:"city"`
	Address       string          `json:"address"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	MaxGuests     int             `json:"maxGuests"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Amenities     []string        `json:"amenities"`
}

// StatusRequest represents the payload for changing a listing status
type StatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// FeaturedRequest represents the payload for toggling the featured flag
type FeaturedRequest struct {
	Featured bool `json:"featured"`
}

// FilterOptions provides filtering options for listing searches
type FilterOptions struct {
	City     string `form:"city" json:"city,omitempty"`
	MinPrice string `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice string `form:"maxPrice" json:"maxPrice,omitempty"`
	Guests   int    `form:"guests" json:"guests,omitempty"`
	Status   string `form:"status" json:"status,omitempty"`
	SortBy   string `form:"sortBy" json:"sortBy,omitempty"`
	Page     int    `form:"page" json:"page"`
	Limit    int    `form:"limit" json:"limit"`
}

// normalize applies pagination defaults and caps
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

// PaginatedProperties represents a page of listings
type PaginatedProperties struct {
	Properties []Property `json:"properties"`
	TotalCount int64      `json:"totalCount"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

// PropertyWithImages bundles a listing with its photo gallery
type PropertyWithImages struct {
	Property Property        `json:"property"`
	Images   []PropertyImage `json:"images"`
}

// PropertyStats aggregates platform listing counts
type PropertyStats struct {
	TotalProperties     int64           `json:"totalProperties"`
	ActiveProperties    int64           `json:"activeProperties"`
	DraftProperties     int64           `json:"draftProperties"`
	SuspendedProperties int64           `json:"suspendedProperties"`
	FeaturedProperties  int64           `json:"featuredProperties"`
	AverageNightlyPrice decimal.Decimal `json:"averageNightlyPrice"`
}
