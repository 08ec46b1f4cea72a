package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/notekeep/notekeep/internal/note"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed repository for notes. Notes are
// stored with a string "id" field assigned on insert; documents are
// never removed, only flipped inactive through Update.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// ensure a unique index on "id" for fast lookups
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, n note.Note) (note.Note, error) {
	n.ID = uuid.New().String()
	if _, err := m.col.InsertOne(ctx, n); err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (note.Note, error) {
	var n note.Note
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return note.Note{}, ErrNotFound
		}
		return note.Note{}, err
	}
	return n, nil
}

func (m *MongoRepo) Update(ctx context.Context, n note.Note) (note.Note, error) {
	set := bson.M{
		"title":         n.Title,
		"content":       n.Content,
		"lastUpdatedAt": n.LastUpdatedAt,
		"isActive":      n.IsActive,
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"id": n.ID}, bson.M{"$set": set})
	if err != nil {
		return note.Note{}, err
	}
	if res.MatchedCount == 0 {
		return note.Note{}, ErrNotFound
	}
	return n, nil
}

func (m *MongoRepo) ListActive(ctx context.Context) ([]note.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastUpdatedAt", Value: -1}, {Key: "id", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []note.Note{}
	for cur.Next(ctx) {
		var n note.Note
		if err := cur.Decode(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
