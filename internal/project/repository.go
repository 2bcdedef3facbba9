package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	// List returns projects whose status is in statuses, or all projects
	// when statuses is empty. Order is by storage path (id ascending).
	List(ctx context.Context, statuses []Status) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
}
