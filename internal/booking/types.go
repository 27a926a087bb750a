package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cache key resources for bookings
const (
	bookingResource      = "bookings"
	availabilityResource = "availability"
)

// dateLayout is the wire format for availability window bounds
const dateLayout = "2006-01-02"

// CreateBookingRequest represents the payload for requesting a stay
type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	GuestID    uuid.UUID `json:"guestId" binding:"required"`
	CheckIn    time.Time `json:"checkIn" binding:"required"`
	CheckOut   time.Time `json:"checkOut" binding:"required"`
	Guests     int       `json:"guests" binding:"required"`
	Note       string    `json:"note"`
}

// FilterOptions provides filtering options for booking listings
type FilterOptions struct {
	Status     string `form:"status" json:"status,omitempty"`
	PropertyID string `form:"propertyId" json:"propertyId,omitempty"`
	GuestID    string `form:"guestId" json:"guestId,omitempty"`
	Page       int    `form:"page" json:"page"`
	Limit      int    `form:"limit" json:"limit"`
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

// PaginatedBookings represents a page of bookings
type PaginatedBookings struct {
	Bookings   []Booking `json:"bookings"`
	TotalCount int64     `json:"totalCount"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
}

// BookedRange represents one occupied date span of a listing
type BookedRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Status   Status    `json:"status"`
}

// Availability represents the occupied spans of a listing inside a window
type Availability struct {
	PropertyID uuid.UUID     `json:"propertyId"`
	From       time.Time     `json:"from"`
	To         time.Time     `json:"to"`
	Booked     []BookedRange `json:"booked"`
}

// BookingStats aggregates booking counts and confirmed revenue
type BookingStats struct {
	TotalBookings int64           `json:"totalBookings"`
	Pending       int64           `json:"pending"`
	Confirmed     int64           `json:"confirmed"`
	Completed     int64           `json:"completed"`
	Cancelled     int64           `json:"cancelled"`
	Revenue       decimal.Decimal `json:"revenue"`
}
