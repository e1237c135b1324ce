package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker"
)

// MongoUserRepository implements UserRepository on a MongoDB collection.
// Ids are ObjectID hex strings generated client-side so the same id format
// works across the Mongo and in-memory repositories.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *tracker.User) error {
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *MongoUserRepository) Get(ctx context.Context, id string) (*tracker.User, error) {
	var u tracker.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*tracker.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*tracker.User{}
	for cur.Next(ctx) {
		var u tracker.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, cur.Err()
}

// MongoExerciseRepository implements ExerciseRepository on a MongoDB collection.
type MongoExerciseRepository struct {
	col *mongo.Collection
}

// NewMongoExerciseRepository creates the repository and ensures an index on
// userId, which every log lookup filters on.
func NewMongoExerciseRepository(col *mongo.Collection) *MongoExerciseRepository {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoExerciseRepository{col: col}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, e *tracker.Exercise) error {
	if e.ID == "" {
		e.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *MongoExerciseRepository) ListByUser(ctx context.Context, userID string, f LogFilter) ([]*tracker.Exercise, error) {
	filter := bson.M{"userId": userID}
	if f.From != nil || f.To != nil {
		dateFilter := bson.M{}
		if f.From != nil {
			dateFilter["$gte"] = *f.From
		}
		if f.To != nil {
			dateFilter["$lte"] = *f.To
		}
		filter["date"] = dateFilter
	}
	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*tracker.Exercise{}
	for cur.Next(ctx) {
		var e tracker.Exercise
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}
