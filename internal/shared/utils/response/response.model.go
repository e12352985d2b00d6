package response

// StandardApiResponse is the JSON envelope every handler responds with.
// Business-rule failures (seat conflicts, ownership checks, validation)
// surface here with a 4xx status code; missing or non-admin sessions never
// reach this envelope and redirect to the login page instead.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}
