package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec describes one single-field index. Direction is 1 or -1.
type IndexSpec struct {
	Name      string
	Field     string
	Direction int
	Collation *options.Collation
}

func (s IndexSpec) model() mongo.IndexModel {
	opts := options.Index().SetName(s.Name)
	if s.Collation != nil {
		opts.SetCollation(s.Collation)
	}
	return mongo.IndexModel{
		Keys:    bson.D{{Key: s.Field, Value: s.Direction}},
		Options: opts,
	}
}

// IndexCreator is satisfied by mongo.IndexView.
type IndexCreator interface {
	CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error)
}

// EnsureIndexes creates the given indexes. Existing indexes with the same
// definition are left alone by the server.
func EnsureIndexes(ctx context.Context, view IndexCreator, specs ...IndexSpec) error {
	if len(specs) == 0 {
		return nil
	}
	models := make([]mongo.IndexModel, 0, len(specs))
	for _, s := range specs {
		models = append(models, s.model())
	}
	if _, err := view.CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
