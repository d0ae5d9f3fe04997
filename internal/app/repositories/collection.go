package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when a lookup or update matches no document
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned when an insert hits a unique index
	ErrAlreadyExists = errors.New("document already exists")
)

// collection is a typed view over a mongo collection. Several views with
// different projections may share one underlying collection.
type collection[T any] struct {
	coll *mongo.Collection
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{coll: db.Collection(name)}
}

// objectID parses a hex id. An invalid id is a driver-level failure, not a miss.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("cast to ObjectId failed for value %q: %w", id, err)
	}
	return oid, nil
}

func (c collection[T]) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c collection[T]) findOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	var item T
	if err := c.coll.FindOne(ctx, filter, opts...).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (c collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

// updateByID applies update and returns the document as it is after the update
func (c collection[T]) updateByID(ctx context.Context, id string, update bson.M) (*T, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return c.updateOne(ctx, bson.M{"_id": oid}, update)
}

func (c collection[T]) updateOne(ctx context.Context, filter interface{}, update bson.M) (*T, error) {
	touch(update)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item T
	if err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// deleteByID removes the document if it exists. Missing ids are not an error.
func (c collection[T]) deleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (c collection[T]) count(ctx context.Context, filter interface{}) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

// touch stamps updatedAt on every update
func touch(update bson.M) {
	set, ok := update["$set"].(bson.M)
	if !ok {
		set = bson.M{}
		update["$set"] = set
	}
	set["updatedAt"] = time.Now().UTC()
}

// setIfPresent adds field to a $set document unless value is blank
func setIfPresent(set bson.M, field, value string) {
	if value != "" {
		set[field] = value
	}
}

func now() time.Time {
	return time.Now().UTC()
}
