package repository

import (
	"context"
	"fmt"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoResumeStore keeps resumes as documents keyed by a string "id".
type MongoResumeStore struct {
	col *mongo.Collection
	now func() time.Time
}

func NewMongoResumeStore(ctx context.Context, col *mongo.Collection) (*MongoResumeStore, error) {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("mongo index: %w", err)
	}
	return &MongoResumeStore{col: col, now: time.Now}, nil
}

// Save stores r as a new resume, assigning its id and updatedAt.
func (s *MongoResumeStore) Save(ctx context.Context, r *model.Resume) error {
	r.ID = uuid.NewString()
	r.UpdatedAt = s.now().UTC()
	if _, err := s.col.InsertOne(ctx, r); err != nil {
		return &domain.PersistenceError{Op: "save resume", Cause: err}
	}
	return nil
}

func (s *MongoResumeStore) Update(ctx context.Context, r *model.Resume) error {
	r.UpdatedAt = s.now().UTC()
	res, err := s.col.ReplaceOne(ctx, bson.M{"id": r.ID}, r)
	if err != nil {
		return &domain.PersistenceError{Op: "update resume", Cause: err}
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("resume %s: %w", r.ID, domain.ErrNotFound)
	}
	return nil
}

func (s *MongoResumeStore) Get(ctx context.Context, id string) (*model.Resume, error) {
	var r model.Resume
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("resume %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load resume", Cause: err}
	}
	return &r, nil
}
