package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	creatorserrors "creatorverse/internal/creators/errors"
	"creatorverse/pkg/config"
	mongoutil "creatorverse/pkg/db/mongo"
	"creatorverse/pkg/model"
)

const (
	CollectionName = "creators"
)

// case-insensitive ordering for name sorts
var nameCollation = &options.Collation{Locale: "en", Strength: 2}

type CreatorRepository interface {
	Create(ctx context.Context, c *model.Creator) error
	FindByID(ctx context.Context, id string) (*model.Creator, error)
	FindAll(ctx context.Context, q model.ListQuery) ([]*model.Creator, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, id string, c *model.Creator) error
	Delete(ctx context.Context, id string) error
}

type mongoCreatorRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoCreatorRepository(cfg *config.Config) CreatorRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCreatorRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// EnsureIndexes creates the indexes backing the list sorts.
func EnsureIndexes(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.MongoConnTimeout)
	defer cancel()

	coll := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return mongoutil.EnsureIndexes(ctx, coll.Indexes(),
		mongoutil.IndexSpec{Name: "created_at_1", Field: "created_at", Direction: 1},
		mongoutil.IndexSpec{Name: "name_1", Field: "name", Direction: 1, Collation: nameCollation},
	)
}

// withTimeout keeps the caller's deadline when it is sooner than timeout.
func (r *mongoCreatorRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", creatorserrors.ErrInvalidID, id)
	}
	return oid, nil
}

func (r *mongoCreatorRepository) Create(ctx context.Context, c *model.Creator) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	c.ID = ""
	c.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create creator: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *mongoCreatorRepository) FindByID(ctx context.Context, id string) (*model.Creator, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var c model.Creator
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", creatorserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}
	return &c, nil
}

func (r *mongoCreatorRepository) FindAll(ctx context.Context, q model.ListQuery) ([]*model.Creator, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(q.Limit)).
		SetSkip(q.Offset).
		SetSort(sortFor(q.Sort))
	if q.Sort == model.SortNameAsc {
		opts.SetCollation(nameCollation)
	}

	cursor, err := r.collection.Find(ctx, searchFilter(q.Search), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query creators: %w", err)
	}
	defer cursor.Close(ctx)

	creators := []*model.Creator{}
	if err := cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("failed to decode creators: %w", err)
	}
	return creators, nil
}

func (r *mongoCreatorRepository) Count(ctx context.Context, search string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, searchFilter(search))
	if err != nil {
		return 0, fmt.Errorf("failed to count creators: %w", err)
	}
	return count, nil
}

// Update replaces every client-owned field. id and created_at are never touched.
func (r *mongoCreatorRepository) Update(ctx context.Context, id string, c *model.Creator) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"name":        c.Name,
			"url":         c.URL,
			"description": c.Description,
			"imageURL":    c.ImageURL,
			"youtube":     c.YouTube,
			"twitter":     c.Twitter,
			"instagram":   c.Instagram,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update creator: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", creatorserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoCreatorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete creator: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", creatorserrors.ErrNotFound, id)
	}
	return nil
}

// sortFor breaks ties on _id so pages are stable.
func sortFor(order model.SortOrder) bson.D {
	switch order {
	case model.SortCreatedAtDesc:
		return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	case model.SortNameAsc:
		return bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	}
}

func searchFilter(search string) bson.M {
	search = strings.TrimSpace(search)
	if search == "" {
		return bson.M{}
	}
	return bson.M{"name": bson.M{"$regex": primitive.Regex{
		Pattern: regexp.QuoteMeta(search),
		Options: "i",
	}}}
}
