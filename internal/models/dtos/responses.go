package dtos

// APIResponse is the common envelope for all JSON endpoints.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	ResponseTime string      `json:"response_time"`
	Data         interface{} `json:"data,omitempty"`
}
