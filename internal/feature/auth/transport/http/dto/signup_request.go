// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// It uses Gin's binding tags for validation (required, email format, password length).
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignupRes represents the response for a successful signup.
// The user ID is returned so the client can request taxonomy provisioning
// for the new account.
type SignupRes struct {
	UserID uint `json:"user_id"`
}
