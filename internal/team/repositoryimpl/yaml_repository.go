package repositoryimpl

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/firedeskhq/firedesk/internal/team"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

const membersPrefix = "team"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(id string) string {
	return fmt.Sprintf("%s/%s.yaml", membersPrefix, id)
}

func (r *YAMLRepository) Create(ctx context.Context, m *team.Member) error {
	exists, err := r.storage.Exists(ctx, path(m.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("team member", err)
	}
	if exists {
		return cerr.NewError(cerr.AlreadyExists, "team member already exists", nil)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal team member: %w", err))
	}
	if err := r.storage.Write(ctx, path(m.ID), data); err != nil {
		return cerr.WrapStorageWriteError("team member", err)
	}
	return nil
}

func (r *YAMLRepository) Get(ctx context.Context, id string) (*team.Member, error) {
	data, err := r.storage.Read(ctx, path(id))
	if err != nil {
		return nil, cerr.WrapStorageReadError("team member", err)
	}
	var m team.Member
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal team member: %w", err))
	}
	return &m, nil
}

func (r *YAMLRepository) List(ctx context.Context) ([]*team.Member, error) {
	paths, err := r.storage.List(ctx, membersPrefix)
	if err != nil {
		return nil, cerr.WrapStorageReadError("team members", err)
	}

	sort.Strings(paths)

	var members []*team.Member
	for _, p := range paths {
		data, err := r.storage.Read(ctx, p)
		if err != nil {
			continue
		}
		var m team.Member
		if err := yaml.Unmarshal(data, &m); err != nil {
			continue
		}
		members = append(members, &m)
	}
	return members, nil
}

func (r *YAMLRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.Delete(ctx, path(id)); err != nil {
		return cerr.WrapStorageDeleteError("team member", err)
	}
	return nil
}
