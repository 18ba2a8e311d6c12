package api

// Request fields are pointers so that validator's required tag means "key
// present and not null"; an empty string still counts as present.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    *string `json:"email"    validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    *string `json:"email"    validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// CreateAdRequest defines the payload for the create ad endpoint.
type CreateAdRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// MessageResponse is the body of successful operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}
