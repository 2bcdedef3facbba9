package team

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	Get(ctx context.Context, id string) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	Delete(ctx context.Context, id string) error
}
