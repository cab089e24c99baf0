package api

import (
	"time"

	"github.com/ewinters/portfolio-backend/auth"
	"github.com/ewinters/portfolio-backend/database"
	"github.com/ewinters/portfolio-backend/media"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store media.Store, tokens *auth.Service, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo(), store),
		authHandler:    newAuthHandler(tokens),
		healthHandler:  newHealthHandler(startupTime),
	}
}
