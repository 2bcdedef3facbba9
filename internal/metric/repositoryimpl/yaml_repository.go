package repositoryimpl

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/firedeskhq/firedesk/internal/metric"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

const metricsPrefix = "metrics"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(projectID string) string {
	return fmt.Sprintf("%s/%s.yaml", metricsPrefix, projectID)
}

func (r *YAMLRepository) Put(ctx context.Context, m *metric.Metrics) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal metrics: %w", err))
	}
	if err := r.storage.Write(ctx, path(m.ProjectID), data); err != nil {
		return cerr.WrapStorageWriteError("metrics", err)
	}
	return nil
}

func (r *YAMLRepository) Get(ctx context.Context, projectID string) (*metric.Metrics, error) {
	data, err := r.storage.Read(ctx, path(projectID))
	if err != nil {
		return nil, cerr.WrapStorageReadError("metrics", err)
	}
	var m metric.Metrics
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal metrics: %w", err))
	}
	return &m, nil
}

func (r *YAMLRepository) Delete(ctx context.Context, projectID string) error {
	if err := r.storage.Delete(ctx, path(projectID)); err != nil {
		return cerr.WrapStorageDeleteError("metrics", err)
	}
	return nil
}
