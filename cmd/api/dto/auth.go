package dto

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUserDTO is the identity echoed to authenticated clients.
type SessionUserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponseDTO confirms a successful login.
type LoginResponseDTO struct {
	Success bool           `json:"success"`
	User    SessionUserDTO `json:"user"`
}
