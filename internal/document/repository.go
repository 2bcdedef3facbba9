package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	// ListByProject returns the documents linked to one project, all
	// statuses included.
	ListByProject(ctx context.Context, projectID string) ([]*Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id string) error
}
