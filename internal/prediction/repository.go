package prediction

import "context"

type Repository interface {
	// Upsert writes the prediction for its task, replacing any previous one.
	Upsert(ctx context.Context, p *Prediction) error
	Get(ctx context.Context, taskID string) (*Prediction, error)
	Delete(ctx context.Context, taskID string) error
}
