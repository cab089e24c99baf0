package api

import "github.com/ewinters/portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	authHandler    authHandler
	healthHandler  healthHandler
}

// projectResponse is the payload returned by create and update
type projectResponse struct {
	Success bool           `json:"success"`
	Project models.Project `json:"project"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
}
