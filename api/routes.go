package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ewinters/portfolio-backend/media"
)

// setupRoutes wires every route. Mutating project routes only demand a
// token when requireAuth is set; the public deployment runs open, matching
// the previous behavior of this service.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, requireAuth bool, staticDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/healthz", handlers.healthHandler.health())
		r.Post("/api/login", handlers.authHandler.login())

		r.Get("/api/projects", handlers.projectHandler.listProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())

		r.Group(func(r chi.Router) {
			if requireAuth {
				r.Use(authMiddleware.authenticate)
			}

			r.Post("/api/projects/add", handlers.projectHandler.createProject())
			r.Post("/api/projects/update/{projectID}", handlers.projectHandler.updateProject())
			r.Post("/api/projects/delete", handlers.projectHandler.deleteProject())
		})
	})

	// Uploaded media is served straight off the disk store
	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Handle(media.PublicPrefix+"/*", http.StripPrefix(media.PublicPrefix+"/", fileServer))
	}
}
