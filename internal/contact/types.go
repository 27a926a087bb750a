package contact

const contactResource = "contact"

// SubmitMessageRequest represents the payload of the public contact form
type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// StatusRequest represents the payload for marking a message
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FilterOptions represents the query options for listing messages
type FilterOptions struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
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

// PaginatedMessages represents one page of contact messages
type PaginatedMessages struct {
	Messages []ContactMessage `json:"messages"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}
