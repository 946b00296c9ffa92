package flow

import (
	"context"

	"creatorverse/internal/creators/service"
	"creatorverse/pkg/model"
)

// ServiceStore runs the flows in-process against the creator service.
type ServiceStore struct {
	svc service.CreatorService
}

func NewServiceStore(svc service.CreatorService) *ServiceStore {
	return &ServiceStore{svc: svc}
}

func (s *ServiceStore) Insert(ctx context.Context, c *model.Creator) (*model.Creator, error) {
	record := *c
	if err := s.svc.Create(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *ServiceStore) Update(ctx context.Context, id string, c *model.Creator) (*model.Creator, error) {
	record := *c
	return s.svc.Update(ctx, id, &record)
}

func (s *ServiceStore) DeleteByID(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}

func (s *ServiceStore) Get(ctx context.Context, id string) (*model.Creator, error) {
	return s.svc.GetByID(ctx, id)
}

func (s *ServiceStore) List(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error) {
	return s.svc.List(ctx, q)
}
