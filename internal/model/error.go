package model

// ErrorResponse is the JSON envelope for every error returned to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Client-visible error messages.
const (
	MsgUnauthorized   = "Unauthorized"
	MsgInvalidInput   = "Invalid input"
	MsgInvalidEmail   = "Invalid email format"
	MsgNotFound       = "Not found"
	MsgInternalServer = "Internal server error"
)
