package dto

// APIResponse is the envelope every endpoint returns. StatusCode mirrors the
// HTTP status so clients reading only the body see the same result.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
}

func Success(statusCode int, data any, message string) APIResponse {
	return APIResponse{StatusCode: statusCode, Data: data, Message: message}
}

func Failure(statusCode int, message string) APIResponse {
	return APIResponse{StatusCode: statusCode, Message: message}
}

type ErrorResponse struct {
	Message string `json:"message"`
}
