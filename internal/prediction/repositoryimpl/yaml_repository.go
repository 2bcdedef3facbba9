package repositoryimpl

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/firedeskhq/firedesk/internal/prediction"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

const predictionsPrefix = "predictions"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(taskID string) string {
	return fmt.Sprintf("%s/%s.yaml", predictionsPrefix, taskID)
}

func (r *YAMLRepository) Upsert(ctx context.Context, p *prediction.Prediction) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal prediction: %w", err))
	}
	if err := r.storage.Write(ctx, path(p.TaskID), data); err != nil {
		return cerr.WrapStorageWriteError("prediction", err)
	}
	return nil
}

func (r *YAMLRepository) Get(ctx context.Context, taskID string) (*prediction.Prediction, error) {
	data, err := r.storage.Read(ctx, path(taskID))
	if err != nil {
		return nil, cerr.WrapStorageReadError("prediction", err)
	}
	var p prediction.Prediction
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal prediction: %w", err))
	}
	return &p, nil
}

func (r *YAMLRepository) Delete(ctx context.Context, taskID string) error {
	if err := r.storage.Delete(ctx, path(taskID)); err != nil {
		return cerr.WrapStorageDeleteError("prediction", err)
	}
	return nil
}
