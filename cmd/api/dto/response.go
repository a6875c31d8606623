package dto

// ErrorResponseDTO is the uniform error payload.
type ErrorResponseDTO struct {
	Error string `json:"error"`
}

// SuccessResponseDTO is the uniform ack payload for mutations that return
// no body.
type SuccessResponseDTO struct {
	Success bool `json:"success"`
}
