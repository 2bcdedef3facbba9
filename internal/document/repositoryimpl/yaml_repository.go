package repositoryimpl

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/firedeskhq/firedesk/internal/document"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

const documentsPrefix = "documents"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(id string) string {
	return fmt.Sprintf("%s/%s.yaml", documentsPrefix, id)
}

func (r *YAMLRepository) Create(ctx context.Context, d *document.Document) error {
	exists, err := r.storage.Exists(ctx, path(d.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("document", err)
	}
	if exists {
		return cerr.NewError(cerr.AlreadyExists, "document already exists", nil)
	}
	return r.write(ctx, d)
}

func (r *YAMLRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	data, err := r.storage.Read(ctx, path(id))
	if err != nil {
		return nil, cerr.WrapStorageReadError("document", err)
	}
	var d document.Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal document: %w", err))
	}
	return &d, nil
}

func (r *YAMLRepository) ListByProject(ctx context.Context, projectID string) ([]*document.Document, error) {
	paths, err := r.storage.List(ctx, documentsPrefix)
	if err != nil {
		return nil, cerr.WrapStorageReadError("documents", err)
	}

	sort.Strings(paths)

	var docs []*document.Document
	for _, p := range paths {
		data, err := r.storage.Read(ctx, p)
		if err != nil {
			continue
		}
		var d document.Document
		if err := yaml.Unmarshal(data, &d); err != nil {
			continue
		}
		if d.ProjectID == projectID {
			docs = append(docs, &d)
		}
	}
	return docs, nil
}

func (r *YAMLRepository) Update(ctx context.Context, d *document.Document) error {
	exists, err := r.storage.Exists(ctx, path(d.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("document", err)
	}
	if !exists {
		return cerr.NewError(cerr.NotFound, "document not found", nil)
	}
	return r.write(ctx, d)
}

func (r *YAMLRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.Delete(ctx, path(id)); err != nil {
		return cerr.WrapStorageDeleteError("document", err)
	}
	return nil
}

func (r *YAMLRepository) write(ctx context.Context, d *document.Document) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal document: %w", err))
	}
	if err := r.storage.Write(ctx, path(d.ID), data); err != nil {
		return cerr.WrapStorageWriteError("document", err)
	}
	return nil
}
