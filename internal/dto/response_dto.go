package dto

// ErrorResponse is the uniform error body. Details are only populated for
// validation failures; store-level failures stay generic.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is the uniform success body for operations with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}
