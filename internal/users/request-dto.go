package users

type AddUserRequest struct {
	Username string `json:"username" binding:"required" validate:"required,min=1,max=100"`
	IsAdmin  bool   `json:"is_admin"`
}
