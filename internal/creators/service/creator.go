package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	creatorserrors "creatorverse/internal/creators/errors"
	"creatorverse/internal/creators/repository"
	"creatorverse/internal/creators/validator"
	"creatorverse/pkg/config"
	apperrors "creatorverse/pkg/errors"
	"creatorverse/pkg/model"
	"creatorverse/pkg/sanitizer"
)

type CreatorService interface {
	Create(ctx context.Context, c *model.Creator) error
	GetByID(ctx context.Context, id string) (*model.Creator, error)
	List(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error)
	Update(ctx context.Context, id string, c *model.Creator) (*model.Creator, error)
	Delete(ctx context.Context, id string) error
	Validate(c *model.Creator) validator.FieldErrors
	// DrainEvents blocks until background event publishes finish or ctx ends.
	DrainEvents(ctx context.Context) error
}

type Validator interface {
	Validate(c *model.Creator) validator.FieldErrors
}

// EventPublisher receives a change event after each successful write.
type EventPublisher interface {
	Publish(ctx context.Context, event model.CreatorEvent) error
}

type creatorService struct {
	repo      repository.CreatorRepository
	validator Validator
	events    EventPublisher
	cfg       *config.Config
	now       func() time.Time
	pending   sync.WaitGroup
}

func NewCreatorService(
	repo repository.CreatorRepository,
	validator Validator,
	events EventPublisher,
	cfg *config.Config,
) CreatorService {
	return &creatorService{
		repo:      repo,
		validator: validator,
		events:    events,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *creatorService) Validate(c *model.Creator) validator.FieldErrors {
	return s.validator.Validate(c)
}

// prepare validates the raw draft, then canonicalizes it for storage.
func (s *creatorService) prepare(c *model.Creator) error {
	if c == nil {
		return apperrors.InvalidInput("Creator body is required")
	}
	if errs := s.validator.Validate(c); len(errs) > 0 {
		s.cfg.Log.Warn("Creator validation failed",
			"name", c.Name,
			"fields", len(errs),
			"error", errs.Error(),
		)
		return apperrors.Validation("Creator validation failed", errs)
	}
	sanitizer.NormalizeCreator(c)
	return nil
}

func (s *creatorService) Create(ctx context.Context, c *model.Creator) error {
	if err := s.prepare(c); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.cfg.Log.Error("Failed to create creator",
			"name", c.Name,
			"error", err,
		)
		return apperrors.Internal("Failed to create creator", err)
	}

	s.cfg.Log.Info("Creator created successfully",
		"id", c.ID,
		"name", c.Name,
		"has_social_media", c.HasSocialMedia(),
	)
	s.publish(ctx, model.EventCreatorCreated, c.ID, c)
	return nil
}

func (s *creatorService) GetByID(ctx context.Context, id string) (*model.Creator, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Creator ID cannot be empty")
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "Failed to retrieve creator", id)
	}
	return c, nil
}

func (s *creatorService) List(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error) {
	q.Limit = config.NormalizePaginationLimit(q.Limit)
	q.Offset = config.NormalizeOffset(q.Offset)
	if q.Sort == "" {
		q.Sort = model.DefaultSortOrder
	}

	var (
		creators []*model.Creator
		count    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.repo.Count(gctx, q.Search)
		if err != nil {
			s.cfg.Log.Error("Failed to count creators", "search", q.Search, "error", err)
			return apperrors.Internal("Failed to count creators", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		creators, err = s.repo.FindAll(gctx, q)
		if err != nil {
			s.cfg.Log.Error("Failed to list creators",
				"search", q.Search,
				"sort", q.Sort,
				"limit", q.Limit,
				"offset", q.Offset,
				"error", err,
			)
			return apperrors.Internal("Failed to retrieve creators", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return creators, count, nil
}

// Update is a full-record replace; the stored record is returned.
func (s *creatorService) Update(ctx context.Context, id string, c *model.Creator) (*model.Creator, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Creator ID cannot be empty")
	}
	if err := s.prepare(c); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, c); err != nil {
		return nil, s.mapRepoError(err, "Failed to update creator", id)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "Failed to retrieve updated creator", id)
	}

	s.cfg.Log.Info("Creator updated successfully", "id", id, "name", updated.Name)
	s.publish(ctx, model.EventCreatorUpdated, id, updated)
	return updated, nil
}

func (s *creatorService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Creator ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, "Failed to delete creator", id)
	}

	s.cfg.Log.Info("Creator deleted successfully", "id", id)
	s.publish(ctx, model.EventCreatorDeleted, id, nil)
	return nil
}

func (s *creatorService) mapRepoError(err error, message, id string) error {
	switch {
	case errors.Is(err, creatorserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Creator", id)
	case errors.Is(err, creatorserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid creator ID format")
	default:
		s.cfg.Log.Error(message, "id", id, "error", err)
		return apperrors.Internal(message, err)
	}
}

// publish runs in the background on a context detached from the request, so a
// slow broker never delays or fails the write that triggered it.
func (s *creatorService) publish(ctx context.Context, eventType, id string, c *model.Creator) {
	if s.events == nil {
		return
	}
	event := model.CreatorEvent{
		Type:       eventType,
		CreatorID:  id,
		OccurredAt: s.now().UTC(),
	}
	if c != nil {
		snapshot := *c
		event.Creator = &snapshot
	}

	ctx = context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(ctx, s.publishTimeout())
		defer cancel()

		if err := s.events.Publish(ctx, event); err != nil {
			s.cfg.Log.Error("Failed to publish creator event",
				"event_type", eventType,
				"id", id,
				"error", err,
			)
		}
	}()
}

func (s *creatorService) publishTimeout() time.Duration {
	if s.cfg.PublishTimeout > 0 {
		return s.cfg.PublishTimeout
	}
	return config.DefaultPublishTimeout
}

func (s *creatorService) DrainEvents(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
