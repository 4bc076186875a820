package mongo

import (
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/repository"
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const StrengthTrackerCollection = "strengthtrackerexercises"

type mongoStrengthTrackerRepository struct {
	collection *mongo.Collection
}

// NewMongoStrengthTrackerRepository creates a StrengthTrackerRepository backed by MongoDB.
func NewMongoStrengthTrackerRepository(db *mongo.Database) repository.StrengthTrackerRepository {
	return &mongoStrengthTrackerRepository{
		collection: db.Collection(StrengthTrackerCollection),
	}
}

func keyFilter(key domain.StrengthTrackerKey) bson.M {
	return bson.M{
		"gymGoerId":        key.GymGoerID,
		"strTrkProgramId":  key.ProgramID,
		"strTrkExerciseId": key.ExerciseID,
	}
}

func (r *mongoStrengthTrackerRepository) Exists(ctx context.Context, key domain.StrengthTrackerKey) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, keyFilter(key), options.Count().SetLimit(1))
	if err != nil {
		return false, storageError(err, "count strength tracker exercises")
	}
	return count > 0, nil
}

// FindOrCreate upserts with $setOnInsert, so an existing record is returned untouched.
func (r *mongoStrengthTrackerRepository) FindOrCreate(ctx context.Context, key domain.StrengthTrackerKey) (*domain.StrengthTrackerExercise, error) {
	update := bson.M{"$setOnInsert": bson.M{"sets": bson.A{}}}
	return r.upsert(ctx, key, update, "find or create strength tracker exercise")
}

// AppendSet find-or-creates the record and appends the set in a single pipeline update.
// setNumber is $size(sets)+1 evaluated by the server against the document being
// modified, so concurrent appends get distinct consecutive numbers.
func (r *mongoStrengthTrackerRepository) AppendSet(ctx context.Context, key domain.StrengthTrackerKey, weight string, reps int) (*domain.StrengthTrackerExercise, error) {
	existingSets := bson.M{"$ifNull": bson.A{"$sets", bson.A{}}}
	newSet := bson.M{
		"_id":       primitive.NewObjectID(),
		"setNumber": bson.M{"$add": bson.A{bson.M{"$size": existingSets}, 1}},
		"weight":    bson.M{"$literal": weight},
		"reps":      bson.M{"$literal": reps},
	}
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"sets": bson.M{"$concatArrays": bson.A{existingSets, bson.A{newSet}}},
		}}},
	}
	return r.upsert(ctx, key, pipeline, "append strength tracker set")
}

// upsert runs an upserting FindOneAndUpdate on the key. Two concurrent inserts of the
// same key collide on the unique index; the loser retries once and then matches the
// winner's document.
func (r *mongoStrengthTrackerRepository) upsert(ctx context.Context, key domain.StrengthTrackerKey, update interface{}, op string) (*domain.StrengthTrackerExercise, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var exercise domain.StrengthTrackerExercise
	err := r.collection.FindOneAndUpdate(ctx, keyFilter(key), update, opts).Decode(&exercise)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		log.Debugf("%s: lost upsert race for %s/%s, retrying", op, key.ProgramID, key.ExerciseID)
		err = r.collection.FindOneAndUpdate(ctx, keyFilter(key), update, opts).Decode(&exercise)
	}
	if err != nil {
		return nil, storageError(err, op)
	}
	if exercise.Sets == nil {
		exercise.Sets = []domain.Set{}
	}
	return &exercise, nil
}

// EnsureStrengthTrackerIndexes creates the unique key index the upserts rely on.
func EnsureStrengthTrackerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "gymGoerId", Value: 1},
				{Key: "strTrkProgramId", Value: 1},
				{Key: "strTrkExerciseId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}
