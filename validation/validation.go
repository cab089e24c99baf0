// Package validation checks incoming payloads before they reach storage
// and fills in the documented defaults.
package validation

import (
	"time"

	"github.com/ewinters/portfolio-backend/errs"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ProjectInput mirrors the projectData JSON carried in the multipart
// create/update requests.
type ProjectInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	Tags          []string `json:"tags"`
	Date          string   `json:"date"`
	IsPublic      bool     `json:"isPublic"`
	Status        string   `json:"status"`
	Collaborators string   `json:"collaborators"`
	Customer      string   `json:"customer"`
	GithubURL     string   `json:"githubUrl"`
	LiveURL       string   `json:"liveUrl"`
}

// Validate rejects payloads missing required fields. Callers must not
// reach storage with an input that failed validation.
func (in *ProjectInput) Validate() error {
	if in.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if in.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if in.Status != "" && in.Status != StatusDraft && in.Status != StatusPublished {
		return errs.NewInvalidFieldError("status", `must be "draft" or "published"`)
	}
	return nil
}

// ApplyDefaults coerces absent fields: nil slices become empty, status
// falls back to draft, and the date defaults to the creation day.
func (in *ProjectInput) ApplyDefaults(now time.Time) {
	if in.Technologies == nil {
		in.Technologies = []string{}
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Status == "" {
		in.Status = StatusDraft
	}
	if in.Date == "" {
		in.Date = now.UTC().Format("2006-01-02")
	}
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Username == "" {
		return errs.NewMissingRequiredFieldError("username")
	}
	if c.Password == "" {
		return errs.NewMissingRequiredFieldError("password")
	}
	return nil
}
