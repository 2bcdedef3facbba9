package repositoryimpl

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/firedeskhq/firedesk/internal/timelog"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

const timeLogsPrefix = "timelogs"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(id string) string {
	return fmt.Sprintf("%s/%s.yaml", timeLogsPrefix, id)
}

func (r *YAMLRepository) Create(ctx context.Context, l *timelog.TimeLog) error {
	exists, err := r.storage.Exists(ctx, path(l.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("time log", err)
	}
	if exists {
		return cerr.NewError(cerr.AlreadyExists, "time log already exists", nil)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal time log: %w", err))
	}
	if err := r.storage.Write(ctx, path(l.ID), data); err != nil {
		return cerr.WrapStorageWriteError("time log", err)
	}
	return nil
}

func (r *YAMLRepository) Get(ctx context.Context, id string) (*timelog.TimeLog, error) {
	data, err := r.storage.Read(ctx, path(id))
	if err != nil {
		return nil, cerr.WrapStorageReadError("time log", err)
	}
	var l timelog.TimeLog
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal time log: %w", err))
	}
	return &l, nil
}

func (r *YAMLRepository) ListByTask(ctx context.Context, taskID string) ([]*timelog.TimeLog, error) {
	paths, err := r.storage.List(ctx, timeLogsPrefix)
	if err != nil {
		return nil, cerr.WrapStorageReadError("time logs", err)
	}

	var logs []*timelog.TimeLog
	for _, p := range paths {
		data, err := r.storage.Read(ctx, p)
		if err != nil {
			continue
		}
		var l timelog.TimeLog
		if err := yaml.Unmarshal(data, &l); err != nil {
			continue
		}
		if taskID != "" && l.TaskID != taskID {
			continue
		}
		logs = append(logs, &l)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].StartTime.Before(logs[j].StartTime)
	})
	return logs, nil
}

func (r *YAMLRepository) Update(ctx context.Context, l *timelog.TimeLog) error {
	exists, err := r.storage.Exists(ctx, path(l.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("time log", err)
	}
	if !exists {
		return cerr.NewError(cerr.NotFound, "time log not found", nil)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal time log: %w", err))
	}
	if err := r.storage.Write(ctx, path(l.ID), data); err != nil {
		return cerr.WrapStorageWriteError("time log", err)
	}
	return nil
}

func (r *YAMLRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.Delete(ctx, path(id)); err != nil {
		return cerr.WrapStorageDeleteError("time log", err)
	}
	return nil
}
