package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fortitwin/internal/model"
)

// DocumentRepo handles MongoDB operations for retrieval documents
type DocumentRepo interface {
	Upsert(ctx context.Context, doc *model.Document) error
	Search(ctx context.Context, query string, limit int) ([]model.Document, error)
	EnsureIndexes(ctx context.Context) error
}

type documentRepo struct {
	documents *mongo.Collection
}

// NewDocumentRepo creates a new document repository
func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	return &documentRepo{
		documents: db.Collection("documents"),
	}
}

// EnsureIndexes creates the text index Search relies on
func (r *documentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.documents.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "tags", Value: "text"},
			{Key: "body", Value: "text"},
		},
	})
	return err
}

func (r *documentRepo) Upsert(ctx context.Context, doc *model.Document) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.documents.ReplaceOne(ctx, bson.M{"title": doc.Title}, doc, opts)
	return err
}

// Search runs a text search ordered by relevance score
func (r *documentRepo) Search(ctx context.Context, query string, limit int) ([]model.Document, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(int64(limit))

	cursor, err := r.documents.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
