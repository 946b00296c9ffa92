package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeIndexView struct {
	models []mongo.IndexModel
	err    error
}

func (f *fakeIndexView) CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error) {
	f.models = models
	return nil, f.err
}

func TestEnsureIndexes(t *testing.T) {
	view := &fakeIndexView{}
	err := EnsureIndexes(context.Background(), view,
		IndexSpec{Name: "created_at_1", Field: "created_at", Direction: 1},
		IndexSpec{Name: "name_1", Field: "name", Direction: 1, Collation: &options.Collation{Locale: "en", Strength: 2}},
	)
	if err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	if len(view.models) != 2 {
		t.Fatalf("expected 2 index models, got %d", len(view.models))
	}

	keys, ok := view.models[0].Keys.(bson.D)
	if !ok || keys[0].Key != "created_at" || keys[0].Value != 1 {
		t.Errorf("unexpected keys %v", view.models[0].Keys)
	}
	if view.models[1].Options.Collation == nil {
		t.Error("expected collation on name index")
	}
}

func TestEnsureIndexes_Error(t *testing.T) {
	cause := errors.New("not primary")
	view := &fakeIndexView{err: cause}
	err := EnsureIndexes(context.Background(), view, IndexSpec{Name: "x", Field: "x", Direction: 1})
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestEnsureIndexes_NoSpecs(t *testing.T) {
	view := &fakeIndexView{err: errors.New("should not be called")}
	if err := EnsureIndexes(context.Background(), view); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
