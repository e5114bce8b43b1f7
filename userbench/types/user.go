package types

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest is a partial update; nil fields are left out of the body.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r UpdateUserRequest) Empty() bool {
	return r.Username == nil && r.Email == nil
}

type ErrorResponse struct {
	Message string `json:"message"`
}
