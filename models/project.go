package models

// MediaNone is the sentinel stored when a project has no media attached.
// It is distinct from an empty string so that "no media" survives
// round-trips through clients that drop empty fields.
const MediaNone = "None"

// Project represents a single portfolio entry
type Project struct {
	ID            int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description   string     `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies  StringList `json:"technologies" db:"technologies" gorm:"type:text;not null"`
	Tags          StringList `json:"tags" db:"tags" gorm:"type:text;not null"`
	Date          string     `json:"date" db:"date" gorm:"type:text;not null"`
	IsPublic      bool       `json:"isPublic" db:"is_public" gorm:"not null"`
	Status        string     `json:"status" db:"status" gorm:"type:text;not null"`
	Collaborators string     `json:"collaborators" db:"collaborators" gorm:"type:text;not null"`
	Customer      string     `json:"customer" db:"customer" gorm:"type:text;not null"`
	Media         string     `json:"media" db:"media" gorm:"type:text;not null"`
	GithubURL     string     `json:"githubUrl" db:"github_url" gorm:"type:text;not null"`
	LiveURL       string     `json:"liveUrl" db:"live_url" gorm:"type:text;not null"`
}

// HasMedia reports whether the project references an uploaded file.
func (p Project) HasMedia() bool {
	return p.Media != "" && p.Media != MediaNone
}
