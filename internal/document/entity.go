package document

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Document is a file linked to a project, e.g. a certificate or signed form.
type Document struct {
	ID        string    `yaml:"id"`
	ProjectID string    `yaml:"project_id"`
	Name      string    `yaml:"name"`
	Status    Status    `yaml:"status"`
	FileURL   string    `yaml:"file_url,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}
