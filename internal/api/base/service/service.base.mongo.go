// Package service contains the generic MongoDB data access layer shared by
// every domain service.
package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "gotask_backend/internal/api/base/models"
	"gotask_backend/internal/common"
	"gotask_backend/internal/utility"
)

// UpdateData is the typed form of a MongoDB update document. Marshals to
// the corresponding update operators; empty sections are omitted.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"`
	Unset       map[string]interface{} `bson:"$unset,omitempty"`
	Push        map[string]interface{} `bson:"$push,omitempty"`
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`
}

// ToUpdateData normalizes the accepted update shapes into UpdateData.
// A plain map is treated as a $set.
func ToUpdateData(update interface{}) (*UpdateData, error) {
	switch u := update.(type) {
	case *UpdateData:
		return u, nil
	case UpdateData:
		return &u, nil
	case map[string]interface{}:
		return &UpdateData{Set: u}, nil
	case bson.M:
		return &UpdateData{Set: u}, nil
	default:
		dataMap, err := utility.ToBsonMap(update)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		return &UpdateData{Set: dataMap}, nil
	}
}

// BaseServiceMongo defines the CRUD surface every domain service inherits.
type BaseServiceMongo[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	InsertMany(ctx context.Context, data []T) ([]T, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update interface{}) (T, error)
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error)
	FindOneAndDelete(ctx context.Context, filter interface{}) (T, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data T) (T, error)
	UpsertMany(ctx context.Context, filter interface{}, data []T) ([]T, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl implements BaseServiceMongo against one collection.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo creates the generic service for a collection.
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection exposes the underlying handle for aggregation queries.
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne creates one record, stamping createdAt/updatedAt.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToBsonMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Drop zero ObjectIDs so the driver generates one.
	if id, ok := dataMap["_id"].(primitive.ObjectID); ok && id.IsZero() {
		delete(dataMap, "_id")
	}

	now := time.Now()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

// InsertMany creates multiple records in one write.
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	now := time.Now()
	documents := make([]interface{}, 0, len(data))
	for _, item := range data {
		dataMap, err := utility.ToBsonMap(item)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		if id, ok := dataMap["_id"].(primitive.ObjectID); ok && id.IsZero() {
			delete(dataMap, "_id")
		}
		dataMap["createdAt"] = now
		dataMap["updatedAt"] = now
		documents = append(documents, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": result.InsertedIDs}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var created []T
	if err := cursor.All(ctx, &created); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if created == nil {
		created = []T{}
	}
	return created, nil
}

// FindOne returns a single document matching the filter.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	findResult := s.collection.FindOne(ctx, filter, opts)
	if err := findResult.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	if err := findResult.Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.NewError(common.ErrCodeValidationFormat, "Failed to decode document", common.StatusBadRequest, err)
	}
	return result, nil
}

// FindOneById looks a document up by its ObjectID.
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds returns the documents whose IDs appear in ids.
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// Find returns every document matching the filter. Always returns a
// non-nil slice.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	} else if filterMap, ok := filter.(bson.M); ok && len(filterMap) == 0 {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if results == nil {
		results = []T{}
	}
	return results, nil
}

// FindWithPagination runs a filtered find and a count concurrently and
// shapes the result into a page. Page defaults to 1 and limit to 10 when
// out of range; totalPage is 0 when nothing matches.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}
	skip := (page - 1) * limit
	opts.SetSkip(skip).SetLimit(limit)

	var (
		items    []T
		total    int64
		findErr  error
		countErr error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		total, countErr = s.collection.CountDocuments(ctx, filter)
	}()

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		findErr = err
	} else {
		defer cursor.Close(ctx)
		findErr = cursor.All(ctx, &items)
	}
	<-done

	if findErr != nil {
		return nil, common.ConvertMongoError(findErr)
	}
	if countErr != nil {
		return nil, common.ConvertMongoError(countErr)
	}
	if items == nil {
		items = []T{}
	}

	totalPage := int64(0)
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// UpdateOne applies an update to the first matching document and returns
// the updated document.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	return s.FindOneAndUpdate(ctx, filter, update, nil)
}

// UpdateMany applies an update to every matching document.
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	updateData, err := ToUpdateData(update)
	if err != nil {
		return 0, err
	}
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now()

	result, err := s.collection.UpdateMany(ctx, filter, updateData)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// UpdateById applies an update to the document with the given ID.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update interface{}) (T, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, nil)
}

// DeleteOne removes the first matching document.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany removes every matching document.
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteById removes the document with the given ID.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// FindOneAndUpdate updates one document and returns it in its post-update
// state.
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, err
	}
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now()

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	opts.SetReturnDocument(options.After)

	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, filter, updateData, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// FindOneAndDelete removes one document and returns its last state.
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}) (T, error) {
	var zero T
	var deleted T
	if err := s.collection.FindOneAndDelete(ctx, filter).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return deleted, nil
}

// CountDocuments counts documents matching the filter.
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct returns the distinct values of a field over matching documents.
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.D{}
	}
	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// Upsert updates the first matching document or inserts data when nothing
// matches, returning the resulting document.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToBsonMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if id, ok := dataMap["_id"].(primitive.ObjectID); ok && id.IsZero() {
		delete(dataMap, "_id")
	}

	now := time.Now()
	// createdAt only on insert; a $set would conflict with $setOnInsert.
	delete(dataMap, "createdAt")
	dataMap["updatedAt"] = now
	update := UpdateData{
		Set:         dataMap,
		SetOnInsert: map[string]interface{}{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result T
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// UpsertMany upserts each item against the shared filter in sequence.
func (s *BaseServiceMongoImpl[T]) UpsertMany(ctx context.Context, filter interface{}, data []T) ([]T, error) {
	results := make([]T, 0, len(data))
	for _, item := range data {
		result, err := s.Upsert(ctx, filter, item)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// DocumentExists reports whether any document matches the filter.
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
