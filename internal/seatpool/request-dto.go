package seatpool

type ResizePoolRequest struct {
	TotalTickets int `json:"total_tickets" binding:"required" validate:"required,min=1"`
}
