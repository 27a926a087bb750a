package errors

// Error message constants
const (
	ErrMsgImageNotFound = "Image not found"
	ErrMsgImageSize     = "Image size exceeds maximum allowed size"
	ErrMsgImageType     = "Image type not allowed"
	ErrMsgTitleLength   = "Title length must be between min and max length"
	ErrMsgDescLength    = "Description length exceeds maximum allowed length"
	ErrMsgInvalidDates  = "Check-out date must be after check-in date"
	ErrMsgDatesInPast   = "Stay dates must not be in the past"
	ErrMsgGuestCount    = "Guest count exceeds property capacity"
	ErrMsgRatingRange   = "Rating must be between 1 and 5"
	ErrMsgMessageLength = "Message length exceeds maximum allowed length"
	ErrMsgInvalidEmail  = "Email address is not valid"
)
