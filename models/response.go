package models

// APIResponse is the envelope every /api endpoint returns.
// Exactly one of Data or Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func Fail(msg string) APIResponse {
	return APIResponse{Success: false, Error: msg}
}
