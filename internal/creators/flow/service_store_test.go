package flow

import (
	"context"
	"fmt"
	"testing"
	"time"

	creatorserrors "creatorverse/internal/creators/errors"
	"creatorverse/internal/creators/service"
	"creatorverse/pkg/config"
	"creatorverse/pkg/model"
)

// memRepository is an in-memory CreatorRepository.
type memRepository struct {
	records map[string]*model.Creator
	seq     int
}

func newMemRepository() *memRepository {
	return &memRepository{records: map[string]*model.Creator{}}
}

func (m *memRepository) Create(ctx context.Context, c *model.Creator) error {
	m.seq++
	c.ID = fmt.Sprintf("%024x", m.seq)
	c.CreatedAt = time.Now().UTC()
	stored := *c
	m.records[c.ID] = &stored
	return nil
}

func (m *memRepository) FindByID(ctx context.Context, id string) (*model.Creator, error) {
	c, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", creatorserrors.ErrNotFound, id)
	}
	out := *c
	return &out, nil
}

func (m *memRepository) FindAll(ctx context.Context, q model.ListQuery) ([]*model.Creator, error) {
	out := make([]*model.Creator, 0, len(m.records))
	for _, c := range m.records {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepository) Count(ctx context.Context, search string) (int64, error) {
	return int64(len(m.records)), nil
}

func (m *memRepository) Update(ctx context.Context, id string, c *model.Creator) error {
	existing, ok := m.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", creatorserrors.ErrNotFound, id)
	}
	stored := *c
	stored.ID = id
	stored.CreatedAt = existing.CreatedAt
	m.records[id] = &stored
	return nil
}

func (m *memRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("%w: %s", creatorserrors.ErrNotFound, id)
	}
	delete(m.records, id)
	return nil
}

type nopEvents struct{}

func (nopEvents) Publish(context.Context, model.CreatorEvent) error { return nil }

func newServiceDriver(repo *memRepository) *Driver {
	cfg := &config.Config{Log: testLogger()}
	svc := service.NewCreatorService(repo, newValidator(), nopEvents{}, cfg)
	return NewDriver(NewServiceStore(svc), newValidator(), testLogger())
}

func TestServiceStore_SubmitNormalizesBeforePersisting(t *testing.T) {
	repo := newMemRepository()
	d := newServiceDriver(repo)
	ctx := context.Background()

	s := NewCreate()
	s = OnFieldChange(s, "name", "Ada")
	s = OnFieldChange(s, "url", "https://ada.dev")
	s = OnFieldChange(s, "description", "Writes about analytical engines")
	s = OnFieldChange(s, "twitter", "@AdaL")
	s = OnFieldChange(s, "youtube", "https://www.youtube.com/@AdaChannel/")

	s = d.Submit(ctx, s)
	if s.Phase != Success {
		t.Fatalf("expected success, got %s (%s)", s.Phase, s.Notice)
	}
	if s.Notice != NoticeAdded || s.Redirect != HomePath {
		t.Errorf("unexpected notice/redirect: %q %q", s.Notice, s.Redirect)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.records))
	}
	for _, c := range repo.records {
		if c.Twitter != "AdaL" {
			t.Errorf("expected twitter handle AdaL, got %q", c.Twitter)
		}
		if c.YouTube != "AdaChannel" {
			t.Errorf("expected youtube handle AdaChannel, got %q", c.YouTube)
		}
	}
}

func TestServiceStore_EditAndDelete(t *testing.T) {
	repo := newMemRepository()
	d := newServiceDriver(repo)
	ctx := context.Background()

	seed := &model.Creator{Name: "Grace", URL: "https://grace.dev", Description: "Compilers and COBOL history"}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatal(err)
	}

	s := d.OpenEdit(ctx, seed.ID)
	if s.Phase != Editing {
		t.Fatalf("expected editing, got %s", s.Phase)
	}
	s = OnFieldChange(s, "instagram", "https://instagram.com/grace.h")
	s = d.Submit(ctx, s)
	if s.Phase != Success || s.Redirect != "/"+seed.ID {
		t.Fatalf("expected success redirecting to detail, got %s %q", s.Phase, s.Redirect)
	}

	view := d.LoadDetail(ctx, seed.ID)
	if view.Redirect != "" || view.Creator.Instagram != "grace.h" || !view.HasSocialMedia {
		t.Errorf("unexpected detail view: %+v", view)
	}

	s = d.Delete(ctx, NewEdit(view.Creator), true)
	if s.Phase != Deleted {
		t.Fatalf("expected deleted, got %s", s.Phase)
	}
	if view := d.LoadDetail(ctx, seed.ID); view.Redirect != HomePath {
		t.Errorf("expected redirect home after delete, got %+v", view)
	}
}

func TestServiceStore_ListFreshEachCall(t *testing.T) {
	repo := newMemRepository()
	d := newServiceDriver(repo)
	ctx := context.Background()

	if view := d.LoadList(ctx, model.ListQuery{}); !view.Empty {
		t.Errorf("expected empty list, got %+v", view)
	}
	_ = repo.Create(ctx, &model.Creator{Name: "Linus", URL: "https://l.dev", Description: "Kernel maintainer notes"})
	view := d.LoadList(ctx, model.ListQuery{})
	if view.Empty || view.Total != 1 || len(view.Creators) != 1 {
		t.Errorf("expected one creator after insert, got %+v", view)
	}
}
