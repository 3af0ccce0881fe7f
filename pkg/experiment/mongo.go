package experiment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "github.com/matzehuels/traversalgroup/pkg/errors"
)

// MongoStore persists experiment results in MongoDB, one collection per
// record kind. All writes are upserts on the records' natural keys, so
// concurrent experiments can share a database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// MongoOptions configures a MongoStore connection.
type MongoOptions struct {
	URI      string // defaults to mongodb://localhost:27017
	Database string // defaults to traversalgroup
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		opts.URI = "mongodb://localhost:27017"
	}
	if opts.Database == "" {
		opts.Database = "traversalgroup"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, err, "connect to %s", opts.URI)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, err, "ping %s", opts.URI)
	}
	return &MongoStore{client: client, db: client.Database(opts.Database)}, nil
}

func (s *MongoStore) upsert(ctx context.Context, coll string, id string, rec any) error {
	_, err := s.db.Collection(coll).ReplaceOne(ctx,
		bson.M{"_id": id}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStore, err, "upsert into %s", coll)
	}
	return nil
}

func (s *MongoStore) EnsureGraph(ctx context.Context, rec GraphRecord) error {
	return s.upsert(ctx, "graphs", rec.ID, rec)
}

func (s *MongoStore) HasGroup(ctx context.Context, repr string) (bool, error) {
	n, err := s.db.Collection("groups").CountDocuments(ctx, bson.M{"_id": repr})
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrCodeStore, err, "count group %s", repr)
	}
	return n > 0, nil
}

func (s *MongoStore) SaveGroup(ctx context.Context, rec GroupRecord) error {
	return s.upsert(ctx, "groups", rec.Repr, rec)
}

func (s *MongoStore) EnsurePermutation(ctx context.Context, rec PermutationRecord) error {
	return s.upsert(ctx, "permutations", rec.ID, rec)
}

func (s *MongoStore) EnsureGroupClass(ctx context.Context, rec GroupClassRecord) (bool, error) {
	res, err := s.db.Collection("group_classes").UpdateOne(ctx,
		bson.M{"_id": rec.Repr},
		bson.M{"$setOnInsert": bson.M{"size": rec.Size}},
		options.Update().SetUpsert(true))
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrCodeStore, err, "upsert group class")
	}
	return res.UpsertedCount > 0, nil
}

func (s *MongoStore) AddHistogram(ctx context.Context, entries []HistogramEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]any, len(entries))
	for i, e := range entries {
		docs[i] = e
	}
	if _, err := s.db.Collection("histograms").InsertMany(ctx, docs); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStore, err, "insert histogram")
	}
	return nil
}

func (s *MongoStore) AddTrial(ctx context.Context, rec TrialRecord) error {
	if _, err := s.db.Collection("trials").InsertOne(ctx, rec); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStore, err, "insert trial %s", rec.ID)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
