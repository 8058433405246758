package errors

// Response is the unified API response envelope shared by the HTTP error
// handler and the response helpers.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and detail for failed responses.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
