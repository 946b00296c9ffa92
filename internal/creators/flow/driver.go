package flow

import (
	"context"

	"creatorverse/pkg/logger"
	"creatorverse/pkg/model"
)

// Store is the remote record store as the forms and views see it.
// *client.CreatorClient and ServiceStore both satisfy it.
type Store interface {
	Insert(ctx context.Context, c *model.Creator) (*model.Creator, error)
	Update(ctx context.Context, id string, c *model.Creator) (*model.Creator, error)
	DeleteByID(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Creator, error)
	List(ctx context.Context, q model.ListQuery) ([]*model.Creator, int64, error)
}

type Driver struct {
	store     Store
	validator Validator
	log       *logger.Logger
}

func NewDriver(store Store, validator Validator, log *logger.Logger) *Driver {
	return &Driver{store: store, validator: validator, log: log}
}

// Submit validates and, when valid, saves the draft. The result is Editing
// (validation failed), Success or Failed.
func (d *Driver) Submit(ctx context.Context, s State) State {
	next, proceed := OnSubmit(s, d.validator)
	if !proceed {
		return next
	}

	draft := next.Draft
	var (
		saved *model.Creator
		err   error
	)
	if next.Mode == ModeCreate {
		saved, err = d.store.Insert(ctx, &draft)
	} else {
		saved, err = d.store.Update(ctx, next.ID, &draft)
	}
	if err != nil {
		d.log.Error("Failed to save creator", "mode", modeName(next.Mode), "id", next.ID, "error", err)
	}
	return OnSubmitResult(next, saved, err)
}

func (d *Driver) Delete(ctx context.Context, s State, confirmed bool) State {
	next, proceed := OnDelete(s, confirmed)
	if !proceed {
		return next
	}

	err := d.store.DeleteByID(ctx, next.ID)
	if err != nil {
		d.log.Error("Failed to delete creator", "id", next.ID, "error", err)
	}
	return OnDeleteResult(next, err)
}

func modeName(m Mode) string {
	if m == ModeCreate {
		return "create"
	}
	return "edit"
}
