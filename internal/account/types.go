package account

// Cache key resources for account entities
const (
	guestResource = "guests"
	hostResource  = "hosts"
	statsResource = "accounts"
)

// CreateGuestRequest represents the payload for creating a guest account
type CreateGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// UpdateGuestRequest represents the payload for updating a guest account
type UpdateGuestRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateHostRequest represents the payload for creating a host account
type CreateHostRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

// UpdateHostRequest represents the payload for updating a host account
type UpdateHostRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

// StatusRequest represents the payload for changing an account status
type StatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// FilterOptions provides filtering options for account listings
type FilterOptions struct {
	Status string `form:"status" json:"status,omitempty"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit"`
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

// PaginatedGuests represents a page of guest accounts
type PaginatedGuests struct {
	Guests     []Guest `json:"guests"`
	TotalCount int64   `json:"totalCount"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

// PaginatedHosts represents a page of host accounts
type PaginatedHosts struct {
	Hosts      []Host `json:"hosts"`
	TotalCount int64  `json:"totalCount"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// Stats aggregates platform account counts
type Stats struct {
	TotalGuests   int64 `json:"totalGuests"`
	ActiveGuests  int64 `json:"activeGuests"`
	TotalHosts    int64 `json:"totalHosts"`
	VerifiedHosts int64 `json:"verifiedHosts"`
	Suspended     int64 `json:"suspended"`
}
