package accessrequests

type AccessRequestBody struct {
	Timestamp string `json:"timestamp" binding:"required" validate:"required"`
}

type ReplyRequest struct {
	Requester string `json:"requester" binding:"required" validate:"required"`
}
