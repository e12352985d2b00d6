package bookings

type BookRequest struct {
	Seats []string `json:"seats" binding:"required,min=1" validate:"required,min=1,dive,required"`
}

type CancelRequest struct {
	BookingID string   `json:"booking_id" binding:"required,uuid" validate:"required,uuid"`
	Seats     []string `json:"seats" binding:"required,min=1" validate:"required,min=1,dive,required"`
}
