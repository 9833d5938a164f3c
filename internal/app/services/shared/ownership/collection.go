package ownership

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection wraps a mongo collection so that every read and write goes
// through Scope.
type Collection[T any] struct {
	collection *mongo.Collection
}

func NewCollection[T any](collection *mongo.Collection) *Collection[T] {
	return &Collection[T]{collection: collection}
}

// FindOne returns nil, nil when no owned document matches.
func (c *Collection[T]) FindOne(ctx context.Context, caller *models.Caller, filter bson.M) (*T, error) {
	scoped, err := Scope(caller, filter)
	if err != nil {
		return nil, err
	}

	var doc T
	err = c.collection.FindOne(ctx, scoped).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, caller *models.Caller, id string) (*T, error) {
	filter, ok := ByID(id)
	if !ok {
		return nil, nil
	}
	return c.FindOne(ctx, caller, filter)
}

func (c *Collection[T]) Find(ctx context.Context, caller *models.Caller, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	scoped, err := Scope(caller, filter)
	if err != nil {
		return nil, err
	}

	cursor, err := c.collection.Find(ctx, scoped, opts...)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return docs, nil
}

func (c *Collection[T]) Count(ctx context.Context, caller *models.Caller, filter bson.M) (int64, error) {
	scoped, err := Scope(caller, filter)
	if err != nil {
		return 0, err
	}

	count, err := c.collection.CountDocuments(ctx, scoped)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

// Insert stamps the caller as owner and returns the new document id.
func (c *Collection[T]) Insert(ctx context.Context, caller *models.Caller, doc Owned) (string, error) {
	if err := Stamp(caller, doc); err != nil {
		return "", err
	}

	result, err := c.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

// UpdateByID applies update to an owned document. matched is false when the
// id is invalid, missing or owned by someone else.
func (c *Collection[T]) UpdateByID(ctx context.Context, caller *models.Caller, id string, update bson.M) (matched bool, err error) {
	filter, ok := ByID(id)
	if !ok {
		return false, nil
	}
	scoped, err := Scope(caller, filter)
	if err != nil {
		return false, err
	}

	// The owner field is never writable through an update.
	if set, ok := update["$set"].(bson.M); ok {
		delete(set, OwnerField)
	}

	result, err := c.collection.UpdateOne(ctx, scoped, update, options.Update().SetUpsert(false))
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, caller *models.Caller, id string) (deleted bool, err error) {
	filter, ok := ByID(id)
	if !ok {
		return false, nil
	}
	scoped, err := Scope(caller, filter)
	if err != nil {
		return false, err
	}

	result, err := c.collection.DeleteOne(ctx, scoped)
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
