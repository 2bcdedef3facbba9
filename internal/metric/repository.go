package metric

import "context"

type Repository interface {
	// Put replaces the snapshot for the project.
	Put(ctx context.Context, m *Metrics) error
	// Get returns the snapshot for the project, or a NotFound error when
	// none has been recorded.
	Get(ctx context.Context, projectID string) (*Metrics, error)
	Delete(ctx context.Context, projectID string) error
}
