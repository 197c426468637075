package api_error

type JSONAPIError struct {
	Error        string `json:"error"`
	Code         string `json:"code"`
	ErrorDetails string `json:"details,omitempty"`
}
