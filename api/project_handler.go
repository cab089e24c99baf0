package api

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ewinters/portfolio-backend/errs"
	"github.com/ewinters/portfolio-backend/media"
	"github.com/ewinters/portfolio-backend/models"
	"github.com/ewinters/portfolio-backend/validation"
)

// multipart form memory threshold; larger parts spill to temp files
const maxFormMemory = 8 << 20

// projectStore is the slice of database.ProjectRepo the handler needs.
type projectStore interface {
	FindAll() ([]models.Project, error)
	FindByID(id int) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id int) error
}

type projectHandler struct {
	responder  Responder
	logger     zerolog.Logger
	projects   projectStore
	mediaStore media.Store
}

func newProjectHandler(projects projectStore, mediaStore media.Store) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		projects:   projects,
		mediaStore: mediaStore,
	}
}

// listProjects retrieves all projects, array fields decoded
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.projects.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project from a multipart request carrying a
// projectData JSON part and an optional media file
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, mediaFile, err := h.parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.ApplyDefaults(time.Now())

		mediaPath := models.MediaNone
		if mediaFile != nil {
			if err := media.ValidateUpload(mediaFile); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			mediaPath, err = h.saveMedia(r, mediaFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		project := projectFromInput(input)
		project.Media = mediaPath

		if err := h.projects.Add(&project); err != nil {
			// The row is authoritative; without it the saved file is an orphan
			if project.HasMedia() {
				if delErr := h.mediaStore.Delete(r.Context(), project.Media); delErr != nil {
					h.logger.Error().Err(delErr).Str("media", project.Media).Msg("Failed to remove media after create failure")
				}
			}
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, projectResponse{Success: true, Project: project})
	}
}

// updateProject replaces all mutable fields of an existing project. When a
// new media file accompanies the request the old file is deleted before the
// new one is saved; if the save then fails the stored row keeps referencing
// the already-deleted path until the operator retries.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		existing, err := h.projects.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		input, mediaFile, err := h.parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.ApplyDefaults(time.Now())

		mediaPath := existing.Media
		if mediaFile != nil {
			if err := media.ValidateUpload(mediaFile); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if existing.HasMedia() {
				if delErr := h.mediaStore.Delete(r.Context(), existing.Media); delErr != nil {
					h.logger.Error().Err(delErr).Str("media", existing.Media).Msg("Failed to delete old media file")
				}
			}
			mediaPath, err = h.saveMedia(r, mediaFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		project := projectFromInput(input)
		project.ID = id
		project.Media = mediaPath

		if err := h.projects.Update(&project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, projectResponse{Success: true, Project: project})
	}
}

// deleteProject removes a project and, afterwards, its media file
func (h projectHandler) deleteProject() http.HandlerFunc {
	type deleteRequest struct {
		ID json.Number `json:"id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("delete", err))
			return
		}

		id, err := strconv.Atoi(req.ID.String())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.projects.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projects.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}

		// Best-effort cleanup after the row is gone
		if project.HasMedia() {
			if err := h.mediaStore.Delete(r.Context(), project.Media); err != nil {
				h.logger.Error().Err(err).Str("media", project.Media).Msg("Failed to delete media file")
			}
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

// parseProjectForm extracts and validates the projectData part and the
// optional media file header from a multipart request.
func (h projectHandler) parseProjectForm(r *http.Request) (validation.ProjectInput, *multipart.FileHeader, error) {
	var input validation.ProjectInput

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return input, nil, errs.NewMalformedPayloadError("multipart", err)
	}

	raw := r.FormValue("projectData")
	if raw == "" {
		return input, nil, errs.NewMissingRequiredFieldError("projectData")
	}
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		h.logger.Error().Err(err).Str("projectData", raw).Msg("Failed to decode projectData")
		return input, nil, errs.NewMalformedPayloadError("projectData", err)
	}
	if err := input.Validate(); err != nil {
		return input, nil, err
	}

	var mediaFile *multipart.FileHeader
	if files := r.MultipartForm.File["media"]; len(files) > 0 {
		mediaFile = files[0]
	}
	return input, mediaFile, nil
}

// saveMedia writes an already-validated upload to the media store.
func (h projectHandler) saveMedia(r *http.Request, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", errs.NewMalformedPayloadError("media", err)
	}
	defer f.Close()

	path, err := h.mediaStore.Save(r.Context(), fh.Filename, f)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("Failed to save media file", err)
	}
	return path, nil
}

func projectFromInput(in validation.ProjectInput) models.Project {
	return models.Project{
		Title:         in.Title,
		Description:   in.Description,
		Technologies:  models.StringList(in.Technologies),
		Tags:          models.StringList(in.Tags),
		Date:          in.Date,
		IsPublic:      in.IsPublic,
		Status:        in.Status,
		Collaborators: in.Collaborators,
		Customer:      in.Customer,
		GithubURL:     in.GithubURL,
		LiveURL:       in.LiveURL,
	}
}
