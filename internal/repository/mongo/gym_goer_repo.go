package mongo

import (
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/repository"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	GymGoersCollection = "gymgoers"
	// maxSetAppendAttempts bounds the compare-and-swap loop in AddExerciseSet.
	maxSetAppendAttempts = 5
)

// mongoGymGoerRepository implements the repository.GymGoerRepository interface using MongoDB.
type mongoGymGoerRepository struct {
	collection *mongo.Collection
}

// NewMongoGymGoerRepository creates a new instance of mongoGymGoerRepository.
// It expects a connected *mongo.Database instance.
func NewMongoGymGoerRepository(db *mongo.Database) repository.GymGoerRepository {
	return &mongoGymGoerRepository{
		collection: db.Collection(GymGoersCollection),
	}
}

// Create inserts a new gym goer. Email uniqueness is enforced by the unique index.
func (r *mongoGymGoerRepository) Create(ctx context.Context, gymGoer *domain.GymGoer) error {
	if gymGoer.ID.IsZero() {
		gymGoer.ID = primitive.NewObjectID()
	}
	if gymGoer.TrainingSessions == nil {
		gymGoer.TrainingSessions = []domain.TrainingSession{}
	}

	_, err := r.collection.InsertOne(ctx, gymGoer)
	return storageError(err, "insert gym goer")
}

// GetByEmail retrieves a gym goer by email address.
func (r *mongoGymGoerRepository) GetByEmail(ctx context.Context, email string) (*domain.GymGoer, error) {
	var gymGoer domain.GymGoer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&gymGoer)
	if err != nil {
		return nil, storageError(err, "find gym goer by email")
	}
	return &gymGoer, nil
}

// GetByID retrieves a gym goer by its ObjectID.
func (r *mongoGymGoerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GymGoer, error) {
	var gymGoer domain.GymGoer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&gymGoer)
	if err != nil {
		return nil, storageError(err, "find gym goer by id")
	}
	return &gymGoer, nil
}

// List returns gym goers in insertion order. Only _id and email are loaded,
// listings are always serialized shallow.
func (r *mongoGymGoerRepository) List(ctx context.Context, filter repository.GymGoerFilter) ([]domain.GymGoer, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"email": 1})
	if filter.Limit > 0 {
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, storageError(err, "list gym goers")
	}
	defer cursor.Close(ctx)

	gymGoers := []domain.GymGoer{}
	if err = cursor.All(ctx, &gymGoers); err != nil {
		return nil, storageError(err, "decode gym goers")
	}
	return gymGoers, nil
}

// EnsureTrainingSession pushes a new session only if the document has no session of
// sessionType within today's window. The condition and the push are one update, so
// concurrent callers cannot create two sessions for the same day.
func (r *mongoGymGoerRepository) EnsureTrainingSession(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, now time.Time) (*domain.TrainingSession, bool, error) {
	// Mongo keeps millisecond precision; truncate so the returned value matches what is stored.
	now = now.Truncate(time.Millisecond)
	day := domain.DayOf(now)
	session := domain.NewTrainingSession(sessionType, now)

	filter := bson.M{
		"_id": gymGoerID,
		"trainingSessions": bson.M{
			"$not": bson.M{"$elemMatch": sessionOfDay(sessionType, day)},
		},
	}
	update := bson.M{"$push": bson.M{"trainingSessions": session}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, false, storageError(err, "push training session")
	}
	if result.ModifiedCount == 1 {
		return &session, true, nil
	}

	// No push: either the gym goer does not exist or today's session already does.
	gymGoer, err := r.GetByID(ctx, gymGoerID)
	if err != nil {
		return nil, false, err
	}
	_, existing := gymGoer.FindTrainingSession(sessionType, day)
	if existing == nil {
		return nil, false, repository.ErrNotFound
	}
	return existing, false, nil
}

// AddExercises appends exercises to the day's session in the given order.
func (r *mongoGymGoerRepository) AddExercises(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, day domain.Day, exercises []domain.Exercise) ([]domain.Exercise, error) {
	gymGoer, err := r.GetByID(ctx, gymGoerID)
	if err != nil {
		return nil, err
	}
	_, session := gymGoer.FindTrainingSession(sessionType, day)
	if session == nil {
		return nil, repository.ErrNotFound
	}

	filter := bson.M{"_id": gymGoerID, "trainingSessions._id": session.ID}
	update := bson.M{
		"$push": bson.M{
			"trainingSessions.$.exercises": bson.M{"$each": exercises},
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, storageError(err, "push exercises")
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return exercises, nil
}

// AddExerciseSet appends a set using compare-and-swap on the exercise's set count:
// the push only applies if the exercise still has the number of sets the new
// setNumber was derived from. A lost race re-reads and tries again.
func (r *mongoGymGoerRepository) AddExerciseSet(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, day domain.Day, exerciseName, weight string, reps int) (*domain.Exercise, error) {
	for attempt := 1; attempt <= maxSetAppendAttempts; attempt++ {
		gymGoer, err := r.GetByID(ctx, gymGoerID)
		if err != nil {
			return nil, err
		}
		_, session := gymGoer.FindTrainingSession(sessionType, day)
		if session == nil {
			return nil, repository.ErrNotFound
		}
		_, exercise := session.FindExercise(exerciseName)
		if exercise == nil {
			return nil, repository.ErrNotFound
		}

		set := domain.NewSet(exercise.NextSetNumber(), weight, reps)
		update := bson.M{
			"$push": bson.M{"trainingSessions.$[s].exercises.$[e].sets": set},
		}
		updateOptions := options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"s._id": session.ID},
				bson.M{"e._id": exercise.ID, "e.sets": bson.M{"$size": len(exercise.Sets)}},
			},
		})

		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": gymGoerID}, update, updateOptions)
		if err != nil {
			return nil, storageError(err, "push exercise set")
		}
		if result.ModifiedCount == 1 {
			exercise.Sets = append(exercise.Sets, set)
			return exercise, nil
		}

		log.WithFields(log.Fields{
			"gymGoerId": gymGoerID.Hex(),
			"exercise":  exerciseName,
			"attempt":   attempt,
		}).Debug("set count changed concurrently, retrying append")
	}
	return nil, repository.ErrConcurrentUpdate
}

// UpsertStrengthTrackerProgram replaces the program with the same programId or appends it.
func (r *mongoGymGoerRepository) UpsertStrengthTrackerProgram(ctx context.Context, gymGoerID primitive.ObjectID, program domain.StrengthTrackerProgram) error {
	replaceFilter := bson.M{"_id": gymGoerID, "strengthTrackerPrograms.programId": program.ProgramID}
	replace := bson.M{"$set": bson.M{"strengthTrackerPrograms.$": program}}

	result, err := r.collection.UpdateOne(ctx, replaceFilter, replace)
	if err != nil {
		return storageError(err, "replace strength tracker program")
	}
	if result.MatchedCount > 0 {
		return nil
	}

	pushFilter := bson.M{"_id": gymGoerID, "strengthTrackerPrograms.programId": bson.M{"$ne": program.ProgramID}}
	push := bson.M{"$push": bson.M{"strengthTrackerPrograms": program}}

	result, err = r.collection.UpdateOne(ctx, pushFilter, push)
	if err != nil {
		return storageError(err, "push strength tracker program")
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// A concurrent request pushed the same program between the two updates.
	result, err = r.collection.UpdateOne(ctx, replaceFilter, replace)
	if err != nil {
		return storageError(err, "replace strength tracker program")
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func sessionOfDay(sessionType string, day domain.Day) bson.M {
	return bson.M{
		"sessionType": sessionType,
		"sessionDate": bson.M{"$gte": day.Start, "$lt": day.End},
	}
}

// EnsureGymGoerIndexes creates necessary indexes for the gym goers collection.
// Call this once during application startup.
func EnsureGymGoerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}
