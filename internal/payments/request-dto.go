package payments

type PayRequest struct {
	Method string `json:"method" binding:"omitempty,oneof=card cash upi" validate:"omitempty,oneof=card cash upi"`
}
