package flow

import (
	"context"

	"creatorverse/pkg/model"
)

type DetailView struct {
	Creator        *model.Creator
	SocialLinks    []model.SocialLink
	HasSocialMedia bool
	Redirect       string
}

type ListView struct {
	Query    model.ListQuery
	Creators []*model.Creator
	Total    int64
	// Empty drives the "No Creators Yet" placeholder; a failed fetch is shown the same way.
	Empty bool
	Err   string
}

// LoadDetail fetches one record. Any failure, not-found included, sends the
// viewer back home.
func (d *Driver) LoadDetail(ctx context.Context, id string) DetailView {
	c, err := d.store.Get(ctx, id)
	if err != nil {
		d.log.Error("Failed to load creator", "id", id, "error", err)
		return DetailView{Redirect: HomePath}
	}
	return DetailView{
		Creator:        c,
		SocialLinks:    c.SocialLinks(),
		HasSocialMedia: c.HasSocialMedia(),
	}
}

// OpenEdit loads the record into an edit form, or redirects home when it cannot.
func (d *Driver) OpenEdit(ctx context.Context, id string) State {
	c, err := d.store.Get(ctx, id)
	if err != nil {
		d.log.Error("Failed to open creator for editing", "id", id, "error", err)
		return State{Mode: ModeEdit, ID: id, Phase: Failed, Notice: "Error: " + errorMessage(err), Redirect: HomePath}
	}
	return NewEdit(c)
}

// LoadList always goes to the store; nothing is cached between calls.
func (d *Driver) LoadList(ctx context.Context, q model.ListQuery) ListView {
	if q.Sort == "" {
		q.Sort = model.DefaultSortOrder
	}
	view := ListView{Query: q, Creators: []*model.Creator{}}

	creators, total, err := d.store.List(ctx, q)
	if err != nil {
		d.log.Error("Failed to fetch creators", "sort", q.Sort, "search", q.Search, "error", err)
		view.Empty = true
		view.Err = errorMessage(err)
		return view
	}

	if creators != nil {
		view.Creators = creators
	}
	view.Total = total
	view.Empty = len(view.Creators) == 0
	return view
}
