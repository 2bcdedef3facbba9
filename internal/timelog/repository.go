package timelog

import "context"

type Repository interface {
	Create(ctx context.Context, l *TimeLog) error
	Get(ctx context.Context, id string) (*TimeLog, error)
	// ListByTask returns all time logs for one task, oldest first.
	ListByTask(ctx context.Context, taskID string) ([]*TimeLog, error)
	Update(ctx context.Context, l *TimeLog) error
	Delete(ctx context.Context, id string) error
}
